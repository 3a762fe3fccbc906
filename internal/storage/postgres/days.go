package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/wakelog/internal/models"
)

func (s *Store) SaveDay(day models.Day) error {
	day.Normalize()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	createdAt := now
	if !day.CreatedAt.IsZero() {
		createdAt = day.CreatedAt.UTC().Format(time.RFC3339)
	}

	_, err = tx.Exec(`
		INSERT INTO days (date, wake_time, total_study_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET
			wake_time = EXCLUDED.wake_time,
			total_study_minutes = EXCLUDED.total_study_minutes,
			updated_at = EXCLUDED.updated_at`,
		day.Date, day.WakeTime, day.TotalStudyMinutes, createdAt, now)
	if err != nil {
		return fmt.Errorf("failed to save day %s: %w", day.Date, err)
	}

	if _, err := tx.Exec("DELETE FROM study_sessions WHERE day_date = $1", day.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO study_sessions (id, day_date, position, topic, duration_min, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, session := range day.Sessions {
		if _, err := stmt.Exec(session.ID, day.Date, i, session.Topic, session.DurationMin, session.Notes); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetDay(date string) (models.Day, error) {
	row := s.db.QueryRow(`
		SELECT date, wake_time, total_study_minutes, created_at, updated_at
		FROM days WHERE date = $1`, date)

	day, err := scanDay(row)
	if err != nil {
		return models.Day{}, err
	}

	sessions, err := s.getSessions(day.Date)
	if err != nil {
		return models.Day{}, err
	}
	day.Sessions = sessions

	return day, nil
}

func (s *Store) GetDaysInRange(startDate, endDate string) ([]models.Day, error) {
	return s.queryDays(`
		SELECT date, wake_time, total_study_minutes, created_at, updated_at
		FROM days WHERE date >= $1 AND date <= $2 ORDER BY date`, startDate, endDate)
}

func (s *Store) GetAllDays() ([]models.Day, error) {
	return s.queryDays(`
		SELECT date, wake_time, total_study_minutes, created_at, updated_at
		FROM days ORDER BY date`)
}

func (s *Store) DeleteDay(date string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM study_sessions WHERE day_date = $1", date); err != nil {
		return err
	}

	res, err := tx.Exec("DELETE FROM days WHERE date = $1", date)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no day recorded for %s", date)
	}

	return tx.Commit()
}

func (s *Store) queryDays(query string, args ...any) ([]models.Day, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.Day
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range days {
		sessions, err := s.getSessions(days[i].Date)
		if err != nil {
			return nil, err
		}
		days[i].Sessions = sessions
	}

	return days, nil
}

func (s *Store) getSessions(date string) ([]models.StudySession, error) {
	rows, err := s.db.Query(`
		SELECT id, topic, duration_min, notes
		FROM study_sessions WHERE day_date = $1 ORDER BY position`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var session models.StudySession
		if err := rows.Scan(&session.ID, &session.Topic, &session.DurationMin, &session.Notes); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDay(row rowScanner) (models.Day, error) {
	var day models.Day
	var createdAt, updatedAt string

	if err := row.Scan(&day.Date, &day.WakeTime, &day.TotalStudyMinutes, &createdAt, &updatedAt); err != nil {
		return models.Day{}, err
	}

	var err error
	day.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	day.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return day, nil
}

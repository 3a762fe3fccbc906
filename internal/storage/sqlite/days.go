package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/wakelog/internal/models"
)

// SaveDay upserts a day record and replaces its session list atomically.
// The derived total is recomputed before writing, never trusted as given.
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
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			wake_time = excluded.wake_time,
			total_study_minutes = excluded.total_study_minutes,
			updated_at = excluded.updated_at`,
		day.Date, day.WakeTime, day.TotalStudyMinutes, createdAt, now)
	if err != nil {
		return fmt.Errorf("failed to save day %s: %w", day.Date, err)
	}

	if _, err := tx.Exec("DELETE FROM study_sessions WHERE day_date = ?", day.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO study_sessions (id, day_date, position, topic, duration_min, notes)
		VALUES (?, ?, ?, ?, ?, ?)`)
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
		FROM days WHERE date = ?`, date)

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
		FROM days WHERE date >= ? AND date <= ? ORDER BY date`, startDate, endDate)
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

	if _, err := tx.Exec("DELETE FROM study_sessions WHERE day_date = ?", date); err != nil {
		return err
	}

	res, err := tx.Exec("DELETE FROM days WHERE date = ?", date)
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
		FROM study_sessions WHERE day_date = ? ORDER BY position`, date)
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

package postgres

import "github.com/julianstephens/wakelog/internal/models"

func (s *Store) GetSettings() (models.Settings, error) {
	var settings models.Settings
	err := s.db.QueryRow("SELECT timezone FROM settings WHERE id = 1").Scan(&settings.Timezone)
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET timezone = EXCLUDED.timezone`,
		settings.Timezone)
	return err
}

package storage

import "github.com/julianstephens/wakelog/internal/models"

// Provider is the persistence contract the CLI and analytics layers consume.
// Days are keyed uniquely by date; SaveDay has upsert semantics. Range
// bounds are inclusive YYYY-MM-DD date strings.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Migrate(logFn func(string)) (int, error)
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Days
	SaveDay(models.Day) error
	GetDay(date string) (models.Day, error)
	GetDaysInRange(startDate, endDate string) ([]models.Day, error)
	GetAllDays() ([]models.Day, error)
	DeleteDay(date string) error

	// Utils
	GetConfigPath() string
}

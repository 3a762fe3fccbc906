package constants

const (
	AppName            = "wakelog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/wakelog/wakelog.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard wake time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// HeatmapWindowDays is the length of the trailing heatmap window, today inclusive
	HeatmapWindowDays = 365

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wakelog-"
	BackupFileSuffix = ".db"

	// Wake category boundaries, minutes from midnight
	EarlyWakeCutoffMin = 5 * 60
	GoodWakeCutoffMin  = 7 * 60
)

package storage

import "github.com/julianstephens/wakelog/internal/storage/sqlite"

// NewSQLiteStore creates a SQLite-backed provider at the given file path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

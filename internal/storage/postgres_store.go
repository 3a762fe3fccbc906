package storage

import (
	"errors"

	"github.com/julianstephens/wakelog/internal/storage/postgres"
)

// NewPostgresStore creates a PostgreSQL-backed provider from a connection
// string. The string must not carry an embedded password; see
// HasEmbeddedCredentials.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Such strings are rejected at startup; credentials belong
// in the environment, .pgpass, or the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	ok, err := postgres.ValidateConnString(connStr)
	return !ok && errors.Is(err, postgres.ErrEmbeddedCredentials)
}

package dbmanager

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
)

// ScopedDb is the process-wide connection pool. It is constructed once at
// startup; individual connections are checked out per request and returned
// on completion.
type ScopedDb interface {
	// Conn returns a new connection to the database.
	// Returns a ScopedConn and an error, if any.
	Conn(ctx context.Context) (ScopedConn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
	// Close tears down the pool at process stop.
	Close()
}

// ScopedConn is a single request-scoped connection.
type ScopedConn interface {
	Conn() *sql.Conn
	Close(ctx context.Context)
}

func NewScopedDb(ctx context.Context, dbtype string) ScopedDb {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlDb()
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL DB")
			return nil
		}
		return db
	}
	return nil
}

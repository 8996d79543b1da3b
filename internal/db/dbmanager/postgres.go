package dbmanager

import (
	"context"
	"database/sql"
	"sync/atomic"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/mugiliam/contentsrv/internal/config"
	"github.com/rs/zerolog/log"
)

type postgresqlDb struct {
	db       *sql.DB
	requests atomic.Uint64
	returns  atomic.Uint64
}

func NewPostgresqlDb() (ScopedDb, error) {
	cfg := config.Config().Database
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	return &postgresqlDb{db: db}, nil
}

func (p *postgresqlDb) Conn(ctx context.Context) (ScopedConn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	p.requests.Add(1)
	return &postgresqlConn{conn: conn, pool: p}, nil
}

func (p *postgresqlDb) Stats() (requests, returns uint64) {
	return p.requests.Load(), p.returns.Load()
}

func (p *postgresqlDb) Close() {
	if err := p.db.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close db pool")
	}
}

type postgresqlConn struct {
	conn *sql.Conn
	pool *postgresqlDb
}

func (c *postgresqlConn) Conn() *sql.Conn {
	return c.conn
}

// Close returns the connection to the pool. Safe to call from a deferred
// middleware regardless of how the request ended.
func (c *postgresqlConn) Close(ctx context.Context) {
	if err := c.conn.Close(); err != nil && err != sql.ErrConnDone {
		log.Ctx(ctx).Error().Err(err).Msg("failed to return db connection")
	}
	c.pool.returns.Add(1)
}

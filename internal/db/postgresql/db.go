package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/contentsrv/internal/db/dbmanager"
)

type contentDb struct {
	c dbmanager.ScopedConn
}

func NewContentDb(conn dbmanager.ScopedConn) *contentDb {
	return &contentDb{c: conn}
}

func (h *contentDb) conn() *sql.Conn {
	return h.c.Conn()
}

func (h *contentDb) Close(ctx context.Context) {
	h.c.Close(ctx)
}

package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
)

func (h *contentDb) CreateTag(ctx context.Context, t *models.Tag) apperrors.Error {
	if t.Name == "" {
		return dberror.ErrInvalidInput.Msg("tag name cannot be empty")
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	query := `
		INSERT INTO tags (id, name)
		VALUES ($1, $2)
		RETURNING created, updated
	`

	err := h.conn().QueryRowContext(ctx, query, t.ID, t.Name).Scan(&t.Created, &t.Updated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return dberror.ErrAlreadyExists.Msg("tag already exists")
		}
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (h *contentDb) GetTagByName(ctx context.Context, name string) (*models.Tag, apperrors.Error) {
	if name == "" {
		return nil, dberror.ErrInvalidInput.Msg("tag name cannot be empty")
	}

	var t models.Tag
	err := h.conn().QueryRowContext(ctx, "SELECT id, name, created, updated FROM tags WHERE name = $1", name).
		Scan(&t.ID, &t.Name, &t.Created, &t.Updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("tag not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &t, nil
}

func (h *contentDb) ListTags(ctx context.Context) ([]*models.Tag, apperrors.Error) {
	rows, err := h.conn().QueryContext(ctx, "SELECT id, name, created, updated FROM tags ORDER BY name ASC")
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Created, &t.Updated); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}

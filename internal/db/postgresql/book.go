package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
)

func (h *contentDb) CreateBook(ctx context.Context, b *models.Book) apperrors.Error {
	if b.Title == "" {
		return dberror.ErrInvalidInput.Msg("book title cannot be empty")
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	// Treat empty string as NULL
	description := sql.NullString{String: b.Description, Valid: b.Description != ""}

	query := `
		INSERT INTO books (id, title, description)
		VALUES ($1, $2, $3)
		RETURNING created, updated
	`

	err := h.conn().QueryRowContext(ctx, query, b.ID, b.Title, description).Scan(&b.Created, &b.Updated)
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (h *contentDb) GetBook(ctx context.Context, id uuid.UUID) (*models.Book, apperrors.Error) {
	var b models.Book
	var description sql.NullString
	err := h.conn().QueryRowContext(ctx, "SELECT id, title, description, created, updated FROM books WHERE id = $1", id).
		Scan(&b.ID, &b.Title, &description, &b.Created, &b.Updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("book not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}
	b.Description = description.String

	return &b, nil
}

func (h *contentDb) ListBooks(ctx context.Context) ([]*models.Book, apperrors.Error) {
	rows, err := h.conn().QueryContext(ctx, "SELECT id, title, description, created, updated FROM books ORDER BY title ASC")
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Book
	for rows.Next() {
		var b models.Book
		var description sql.NullString
		if err := rows.Scan(&b.ID, &b.Title, &description, &b.Created, &b.Updated); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		b.Description = description.String
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}

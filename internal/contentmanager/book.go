package contentmanager

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/db"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
)

type BookRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description"`
}

// CreateBook registers a book that namespaces may reference.
func CreateBook(ctx context.Context, req *BookRequest) (*models.Book, apperrors.Error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	b := &models.Book{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := db.DB(ctx).CreateBook(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBook returns the book with the given id.
func GetBook(ctx context.Context, id uuid.UUID) (*models.Book, apperrors.Error) {
	b, err := db.DB(ctx).GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListBooks returns all books ordered by title.
func ListBooks(ctx context.Context) ([]*models.Book, apperrors.Error) {
	return db.DB(ctx).ListBooks(ctx)
}

// ListTags returns all tags ordered by name.
func ListTags(ctx context.Context) ([]*models.Tag, apperrors.Error) {
	return db.DB(ctx).ListTags(ctx)
}

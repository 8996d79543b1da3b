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
	"github.com/rs/zerolog/log"
)

const pageColumns = "id, namespace_id, user_id, title, url_identifier, md_content, status, created, updated"

func (h *contentDb) CreatePage(ctx context.Context, p *models.Page) (err apperrors.Error) {
	if p.NamespaceID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("page namespace cannot be empty")
	}
	if p.UserID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("page author cannot be empty")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	tx, errStd := h.conn().BeginTx(ctx, nil)
	if errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).Msg("failed to begin transaction")
		return dberror.ErrDatabase.Err(errStd)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Ctx(ctx).Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// The parent must exist and must not be soft-deleted. Locked for the
	// duration of the transaction so a concurrent deactivation cannot slip
	// between the check and the insert.
	var active bool
	errStd = tx.QueryRowContext(ctx, "SELECT active FROM namespaces WHERE id = $1 FOR SHARE", p.NamespaceID).Scan(&active)
	if errStd != nil {
		if errStd == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("namespace not found")
		}
		return dberror.ErrDatabase.Err(errStd)
	}
	if !active {
		return dberror.ErrInvalidInput.Msg("namespace is not active")
	}

	query := `
		INSERT INTO pages (id, namespace_id, user_id, title, url_identifier, md_content, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created, updated
	`

	errStd = tx.QueryRowContext(ctx, query,
		p.ID,
		p.NamespaceID,
		p.UserID,
		p.Title,
		p.URLIdentifier,
		p.MDContent,
		p.Status,
	).Scan(&p.Created, &p.Updated)
	if errStd != nil {
		var pgErr *pgconn.PgError
		if errors.As(errStd, &pgErr) {
			switch {
			case pgErr.Code == "23505":
				return dberror.ErrAlreadyExists.Msg("page already exists")
			case pgErr.ConstraintName == "pages_user_id_fkey":
				return dberror.ErrInvalidInput.Msg("author not found")
			}
		}
		log.Ctx(ctx).Error().Err(errStd).Str("url_identifier", p.URLIdentifier).Msg("failed to insert page")
		return dberror.ErrDatabase.Err(errStd)
	}

	if errStd := tx.Commit(); errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errStd)
	}

	return nil
}

func (h *contentDb) GetPage(ctx context.Context, id uuid.UUID) (*models.Page, apperrors.Error) {
	return h.getPageBy(ctx, "id = $1", id)
}

func (h *contentDb) GetPageByURLIdentifier(ctx context.Context, urlIdentifier string) (*models.Page, apperrors.Error) {
	if urlIdentifier == "" {
		return nil, dberror.ErrInvalidInput.Msg("page url identifier cannot be empty")
	}
	return h.getPageBy(ctx, "url_identifier = $1", urlIdentifier)
}

func (h *contentDb) getPageBy(ctx context.Context, where string, arg any) (*models.Page, apperrors.Error) {
	query := "SELECT " + pageColumns + " FROM pages WHERE " + where

	var p models.Page
	err := h.conn().QueryRowContext(ctx, query, arg).
		Scan(&p.ID, &p.NamespaceID, &p.UserID, &p.Title, &p.URLIdentifier, &p.MDContent, &p.Status, &p.Created, &p.Updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("page not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &p, nil
}

func (h *contentDb) ListPagesByNamespace(ctx context.Context, namespaceID uuid.UUID) ([]*models.Page, apperrors.Error) {
	query := "SELECT " + pageColumns + " FROM pages WHERE namespace_id = $1 ORDER BY title ASC"

	rows, err := h.conn().QueryContext(ctx, query, namespaceID)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Page
	for rows.Next() {
		var p models.Page
		err := rows.Scan(&p.ID, &p.NamespaceID, &p.UserID, &p.Title, &p.URLIdentifier, &p.MDContent, &p.Status, &p.Created, &p.Updated)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan page row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}

func (h *contentDb) UpdatePage(ctx context.Context, p *models.Page) apperrors.Error {
	if p.ID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("page id cannot be empty")
	}

	query := `
		UPDATE pages
		SET title = $2,
		    md_content = $3,
		    status = $4,
		    updated = NOW()
		WHERE id = $1
	`

	result, err := h.conn().ExecContext(ctx, query, p.ID, p.Title, p.MDContent, p.Status)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to update page")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("page not found")
	}

	return nil
}

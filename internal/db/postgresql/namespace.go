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

const namespaceColumns = "id, name, slug, md_content, status, active, user_id, book_id, created, updated"

func (h *contentDb) CreateNamespace(ctx context.Context, ns *models.Namespace, tags []string) (err apperrors.Error) {
	if ns.UserID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("namespace owner cannot be empty")
	}
	if ns.ID == uuid.Nil {
		ns.ID = uuid.New()
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

	err = h.createNamespaceWithTransaction(ctx, ns, tx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create namespace")
		return err
	}

	err = h.attachTagsWithTransaction(ctx, tx, ns.ID, tags)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to attach tags")
		return err
	}

	if errStd := tx.Commit(); errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errStd)
	}

	return nil
}

func (h *contentDb) createNamespaceWithTransaction(ctx context.Context, ns *models.Namespace, tx *sql.Tx) apperrors.Error {
	// Treat the nil uuid as NULL
	bookID := uuid.NullUUID{UUID: ns.BookID, Valid: ns.BookID != uuid.Nil}

	query := `
		INSERT INTO namespaces (id, name, slug, md_content, status, active, user_id, book_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created, updated
	`

	err := tx.QueryRowContext(ctx, query,
		ns.ID,
		ns.Name,
		ns.Slug,
		ns.MDContent,
		ns.Status,
		ns.Active,
		ns.UserID,
		bookID,
	).Scan(&ns.Created, &ns.Updated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == "23505":
				return dberror.ErrAlreadyExists.Msg("namespace already exists")
			case pgErr.ConstraintName == "namespaces_user_id_fkey":
				log.Ctx(ctx).Error().Str("user_id", ns.UserID.String()).Msg("namespace owner not found")
				return dberror.ErrInvalidInput.Msg("owner not found")
			case pgErr.ConstraintName == "namespaces_book_id_fkey":
				return dberror.ErrInvalidInput.Msg("book not found")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("slug", ns.Slug).Msg("failed to insert namespace")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (h *contentDb) attachTagsWithTransaction(ctx context.Context, tx *sql.Tx, namespaceID uuid.UUID, tags []string) apperrors.Error {
	for _, name := range tags {
		if name == "" {
			continue
		}
		var tagID uuid.UUID
		// Upsert keyed on the unique name so concurrent attaches converge on
		// one tag row.
		err := tx.QueryRowContext(ctx, `
			INSERT INTO tags (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, uuid.New(), name).Scan(&tagID)
		if err != nil {
			return dberror.ErrDatabase.Err(err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO namespace_tags (namespace_id, tag_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, namespaceID, tagID)
		if err != nil {
			return dberror.ErrDatabase.Err(err)
		}
	}
	return nil
}

func (h *contentDb) GetNamespace(ctx context.Context, id uuid.UUID) (*models.Namespace, apperrors.Error) {
	return h.getNamespaceBy(ctx, "id = $1", id)
}

func (h *contentDb) GetNamespaceBySlug(ctx context.Context, slug string) (*models.Namespace, apperrors.Error) {
	if slug == "" {
		return nil, dberror.ErrInvalidInput.Msg("namespace slug cannot be empty")
	}
	return h.getNamespaceBy(ctx, "slug = $1", slug)
}

func (h *contentDb) getNamespaceBy(ctx context.Context, where string, arg any) (*models.Namespace, apperrors.Error) {
	query := "SELECT " + namespaceColumns + " FROM namespaces WHERE " + where

	var ns models.Namespace
	var bookID uuid.NullUUID
	err := h.conn().QueryRowContext(ctx, query, arg).
		Scan(&ns.ID, &ns.Name, &ns.Slug, &ns.MDContent, &ns.Status, &ns.Active, &ns.UserID, &bookID, &ns.Created, &ns.Updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("namespace not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}
	ns.BookID = bookID.UUID

	return &ns, nil
}

// ListNamespaces returns active namespaces ordered by slug. When userID is
// set the listing is restricted to that owner and includes inactive rows,
// since owners see their own soft-deleted content.
func (h *contentDb) ListNamespaces(ctx context.Context, userID uuid.UUID) ([]*models.Namespace, apperrors.Error) {
	query := "SELECT " + namespaceColumns + " FROM namespaces WHERE active ORDER BY slug ASC"
	args := []any{}
	if userID != uuid.Nil {
		query = "SELECT " + namespaceColumns + " FROM namespaces WHERE user_id = $1 ORDER BY slug ASC"
		args = append(args, userID)
	}

	rows, err := h.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Namespace
	for rows.Next() {
		var ns models.Namespace
		var bookID uuid.NullUUID
		err := rows.Scan(&ns.ID, &ns.Name, &ns.Slug, &ns.MDContent, &ns.Status, &ns.Active, &ns.UserID, &bookID, &ns.Created, &ns.Updated)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan namespace row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		ns.BookID = bookID.UUID
		result = append(result, &ns)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}

func (h *contentDb) UpdateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error {
	if ns.ID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("namespace id cannot be empty")
	}
	bookID := uuid.NullUUID{UUID: ns.BookID, Valid: ns.BookID != uuid.Nil}

	query := `
		UPDATE namespaces
		SET name = $2,
		    md_content = $3,
		    status = $4,
		    active = $5,
		    book_id = $6,
		    updated = NOW()
		WHERE id = $1
	`

	result, err := h.conn().ExecContext(ctx, query, ns.ID, ns.Name, ns.MDContent, ns.Status, ns.Active, bookID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "namespaces_book_id_fkey" {
			return dberror.ErrInvalidInput.Msg("book not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update namespace")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("namespace not found")
	}

	return nil
}

func (h *contentDb) ListNamespaceTags(ctx context.Context, namespaceID uuid.UUID) ([]*models.Tag, apperrors.Error) {
	query := `
		SELECT t.id, t.name, t.created, t.updated
		FROM tags t
		JOIN namespace_tags nt ON nt.tag_id = t.id
		WHERE nt.namespace_id = $1
		ORDER BY t.name ASC
	`

	rows, err := h.conn().QueryContext(ctx, query, namespaceID)
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

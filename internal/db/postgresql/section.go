package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
	"github.com/mugiliam/contentsrv/pkg/types"
	"github.com/rs/zerolog/log"
)

const sectionColumns = "id, page_id, user_id, title, md_content, status, created, updated"

func (h *contentDb) CreateSection(ctx context.Context, s *models.Section) (err apperrors.Error) {
	if s.PageID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("section page cannot be empty")
	}
	if s.UserID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("section author cannot be empty")
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
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

	var pageStatus types.ContentStatus
	errStd = tx.QueryRowContext(ctx, "SELECT status FROM pages WHERE id = $1 FOR SHARE", s.PageID).Scan(&pageStatus)
	if errStd != nil {
		if errStd == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("page not found")
		}
		return dberror.ErrDatabase.Err(errStd)
	}
	if pageStatus != types.ContentStatusActive {
		return dberror.ErrInvalidInput.Msg("page is not active")
	}

	query := `
		INSERT INTO sections (id, page_id, user_id, title, md_content, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created, updated
	`

	errStd = tx.QueryRowContext(ctx, query,
		s.ID,
		s.PageID,
		s.UserID,
		s.Title,
		s.MDContent,
		s.Status,
	).Scan(&s.Created, &s.Updated)
	if errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).Msg("failed to insert section")
		return dberror.ErrDatabase.Err(errStd)
	}

	if errStd := tx.Commit(); errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errStd)
	}

	return nil
}

func (h *contentDb) GetSection(ctx context.Context, id uuid.UUID) (*models.Section, apperrors.Error) {
	query := "SELECT " + sectionColumns + " FROM sections WHERE id = $1"

	var s models.Section
	err := h.conn().QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.PageID, &s.UserID, &s.Title, &s.MDContent, &s.Status, &s.Created, &s.Updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("section not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &s, nil
}

func (h *contentDb) ListSectionsByPage(ctx context.Context, pageID uuid.UUID) ([]*models.Section, apperrors.Error) {
	query := "SELECT " + sectionColumns + " FROM sections WHERE page_id = $1 ORDER BY created ASC"

	rows, err := h.conn().QueryContext(ctx, query, pageID)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Section
	for rows.Next() {
		var s models.Section
		err := rows.Scan(&s.ID, &s.PageID, &s.UserID, &s.Title, &s.MDContent, &s.Status, &s.Created, &s.Updated)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan section row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}

func (h *contentDb) UpdateSection(ctx context.Context, s *models.Section) apperrors.Error {
	if s.ID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("section id cannot be empty")
	}

	query := `
		UPDATE sections
		SET title = $2,
		    md_content = $3,
		    status = $4,
		    updated = NOW()
		WHERE id = $1
	`

	result, err := h.conn().ExecContext(ctx, query, s.ID, s.Title, s.MDContent, s.Status)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to update section")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("section not found")
	}

	return nil
}

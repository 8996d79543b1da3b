package contentmanager

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/common"
	"github.com/mugiliam/contentsrv/internal/db"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
	"github.com/mugiliam/contentsrv/pkg/types"
)

type SectionRequest struct {
	Title     string `json:"title" validate:"required,max=120"`
	MDContent string `json:"md_content" validate:"required"`
}

type SectionUpdateRequest struct {
	Title     types.NullableString `json:"title"`
	MDContent types.NullableString `json:"md_content"`
	Status    *int                 `json:"status" validate:"omitempty,oneof=0 1"`
}

// CreateSection creates a section under the page pageRef resolves to. The
// page must be active.
func CreateSection(ctx context.Context, pageRef string, req *SectionRequest) (*models.Section, apperrors.Error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	userID := common.UserIdFromContext(ctx)
	if userID == uuid.Nil {
		return nil, ErrNotAuthorized
	}

	p, err := GetPage(ctx, pageRef)
	if err != nil {
		return nil, err
	}

	s := &models.Section{
		PageID:    p.ID,
		UserID:    userID,
		Title:     req.Title,
		MDContent: req.MDContent,
		Status:    types.ContentStatusActive,
	}

	if err := db.DB(ctx).CreateSection(ctx, s); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		if errors.Is(err, dberror.ErrInvalidInput) {
			return nil, ErrValidationFailed.Msg(err.Error())
		}
		return nil, err
	}
	return s, nil
}

// GetSection returns the section with the given id.
func GetSection(ctx context.Context, id uuid.UUID) (*models.Section, apperrors.Error) {
	s, err := db.DB(ctx).GetSection(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListSections lists the sections under the page pageRef resolves to, in
// creation order.
func ListSections(ctx context.Context, pageRef string) ([]*models.Section, apperrors.Error) {
	p, err := GetPage(ctx, pageRef)
	if err != nil {
		return nil, err
	}
	return db.DB(ctx).ListSectionsByPage(ctx, p.ID)
}

// UpdateSection applies a partial update to a section authored by the
// caller.
func UpdateSection(ctx context.Context, id uuid.UUID, req *SectionUpdateRequest) (*models.Section, apperrors.Error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Title.IsNil() && req.MDContent.IsNil() && req.Status == nil {
		return nil, ErrNoChanges
	}

	s, err := GetSection(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.UserID != common.UserIdFromContext(ctx) {
		return nil, ErrNotAuthorized
	}

	if !req.Title.IsNil() {
		if req.Title.Value == "" || len(req.Title.Value) > 120 {
			return nil, ErrValidationFailed.Msg("title failed validation on 'max'")
		}
		s.Title = req.Title.Value
	}
	if !req.MDContent.IsNil() {
		s.MDContent = req.MDContent.Value
	}
	if req.Status != nil {
		s.Status = types.ContentStatus(*req.Status)
	}

	if err := db.DB(ctx).UpdateSection(ctx, s); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return s, nil
}

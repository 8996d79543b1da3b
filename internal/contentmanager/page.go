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
	"github.com/rs/zerolog/log"
)

type PageRequest struct {
	Title     string `json:"title" validate:"required,max=120"`
	MDContent string `json:"md_content" validate:"required"`
}

type PageUpdateRequest struct {
	Title     types.NullableString `json:"title"`
	MDContent types.NullableString `json:"md_content"`
	Status    *int                 `json:"status" validate:"omitempty,oneof=0 1"`
}

// CreatePage creates a page under the namespace nsRef resolves to. The
// parent must be active; the url identifier is derived from the namespace
// slug and the page title.
func CreatePage(ctx context.Context, nsRef string, req *PageRequest) (*models.Page, apperrors.Error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	userID := common.UserIdFromContext(ctx)
	if userID == uuid.Nil {
		return nil, ErrNotAuthorized
	}

	ns, err := GetNamespace(ctx, nsRef)
	if err != nil {
		return nil, err
	}

	titleSlug := Slugify(req.Title)
	if titleSlug == "" {
		return nil, ErrValidationFailed.Msg("title does not produce a usable identifier")
	}

	p := &models.Page{
		NamespaceID:   ns.ID,
		UserID:        userID,
		Title:         req.Title,
		URLIdentifier: pageURLIdentifier(ns.Slug, titleSlug),
		MDContent:     req.MDContent,
		Status:        types.ContentStatusActive,
	}

	if err := db.DB(ctx).CreatePage(ctx, p); err != nil {
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrAlreadyExists.Msg("page already exists in this namespace")
		}
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrNamespaceNotFound
		}
		if errors.Is(err, dberror.ErrInvalidInput) {
			return nil, ErrValidationFailed.Msg(err.Error())
		}
		return nil, err
	}

	log.Ctx(ctx).Info().Str("url_identifier", p.URLIdentifier).Msg("created page")
	return p, nil
}

// GetPage resolves ref as a page id when it parses as a uuid, otherwise as
// a url identifier.
func GetPage(ctx context.Context, ref string) (*models.Page, apperrors.Error) {
	if ref == "" {
		return nil, ErrInvalidReference.Msg("page reference cannot be empty")
	}

	var p *models.Page
	var err apperrors.Error
	if id, errStd := uuid.Parse(ref); errStd == nil {
		p, err = db.DB(ctx).GetPage(ctx, id)
	} else {
		p, err = db.DB(ctx).GetPageByURLIdentifier(ctx, ref)
	}
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListPages lists the pages under the namespace nsRef resolves to.
func ListPages(ctx context.Context, nsRef string) ([]*models.Page, apperrors.Error) {
	ns, err := GetNamespace(ctx, nsRef)
	if err != nil {
		return nil, err
	}
	return db.DB(ctx).ListPagesByNamespace(ctx, ns.ID)
}

// UpdatePage applies a partial update to a page authored by the caller.
func UpdatePage(ctx context.Context, ref string, req *PageUpdateRequest) (*models.Page, apperrors.Error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Title.IsNil() && req.MDContent.IsNil() && req.Status == nil {
		return nil, ErrNoChanges
	}

	p, err := GetPage(ctx, ref)
	if err != nil {
		return nil, err
	}
	if p.UserID != common.UserIdFromContext(ctx) {
		return nil, ErrNotAuthorized
	}

	if !req.Title.IsNil() {
		if req.Title.Value == "" || len(req.Title.Value) > 120 {
			return nil, ErrValidationFailed.Msg("title failed validation on 'max'")
		}
		p.Title = req.Title.Value
	}
	if !req.MDContent.IsNil() {
		p.MDContent = req.MDContent.Value
	}
	if req.Status != nil {
		p.Status = types.ContentStatus(*req.Status)
	}

	if err := db.DB(ctx).UpdatePage(ctx, p); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return p, nil
}

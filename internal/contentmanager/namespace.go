// Package contentmanager implements the content operations behind the API:
// namespaces, pages, sections, user profiles, tags and books. Managers
// validate the request payload, enforce ownership and delegate persistence
// to the store.
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

type NamespaceRequest struct {
	Name      string   `json:"name" validate:"required,max=50"`
	MDContent string   `json:"md_content" validate:"required"`
	Tags      []string `json:"tags" validate:"omitempty,max=16,dive,required,max=50"`
	BookID    string   `json:"book_id" validate:"omitempty,uuid"`
}

type NamespaceUpdateRequest struct {
	Name      types.NullableString `json:"name"`
	MDContent types.NullableString `json:"md_content"`
	Status    *int                 `json:"status" validate:"omitempty,oneof=0 1"`
	Active    *bool                `json:"active"`
	BookID    types.NullableString `json:"book_id"`
}

// CreateNamespace creates a namespace owned by the authenticated caller.
// The slug is derived from the name; tags are attached by name, creating
// any that do not exist yet.
func CreateNamespace(ctx context.Context, req *NamespaceRequest) (*models.Namespace, apperrors.Error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	userID := common.UserIdFromContext(ctx)
	if userID == uuid.Nil {
		return nil, ErrNotAuthorized
	}

	slug := Slugify(req.Name)
	if slug == "" {
		return nil, ErrValidationFailed.Msg("name does not produce a usable slug")
	}

	ns := &models.Namespace{
		Name:      req.Name,
		Slug:      slug,
		MDContent: req.MDContent,
		Status:    types.ContentStatusActive,
		Active:    true,
		UserID:    userID,
	}
	if req.BookID != "" {
		bookID, errStd := uuid.Parse(req.BookID)
		if errStd != nil {
			return nil, ErrValidationFailed.Msg("book_id is not a valid id")
		}
		ns.BookID = bookID
	}

	if err := db.DB(ctx).CreateNamespace(ctx, ns, req.Tags); err != nil {
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrAlreadyExists.Msg("namespace slug already exists")
		}
		if errors.Is(err, dberror.ErrInvalidInput) {
			return nil, ErrValidationFailed.Msg(err.Error())
		}
		return nil, err
	}

	log.Ctx(ctx).Info().Str("slug", ns.Slug).Msg("created namespace")
	return ns, nil
}

// GetNamespace resolves ref as a namespace id when it parses as a uuid,
// otherwise as a slug.
func GetNamespace(ctx context.Context, ref string) (*models.Namespace, apperrors.Error) {
	if ref == "" {
		return nil, ErrInvalidReference.Msg("namespace reference cannot be empty")
	}

	var ns *models.Namespace
	var err apperrors.Error
	if id, errStd := uuid.Parse(ref); errStd == nil {
		ns, err = db.DB(ctx).GetNamespace(ctx, id)
	} else {
		ns, err = db.DB(ctx).GetNamespaceBySlug(ctx, ref)
	}
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrNamespaceNotFound
		}
		return nil, err
	}
	return ns, nil
}

// ListNamespaces returns active namespaces. With mine set the listing is
// restricted to the caller and includes soft-deleted rows.
func ListNamespaces(ctx context.Context, mine bool) ([]*models.Namespace, apperrors.Error) {
	userID := uuid.Nil
	if mine {
		userID = common.UserIdFromContext(ctx)
		if userID == uuid.Nil {
			return nil, ErrNotAuthorized
		}
	}
	return db.DB(ctx).ListNamespaces(ctx, userID)
}

// ListNamespaceTags returns the tags attached to the namespace ref resolves
// to.
func ListNamespaceTags(ctx context.Context, ref string) ([]*models.Tag, apperrors.Error) {
	ns, err := GetNamespace(ctx, ref)
	if err != nil {
		return nil, err
	}
	return db.DB(ctx).ListNamespaceTags(ctx, ns.ID)
}

// UpdateNamespace applies a partial update to the caller's namespace. The
// slug never changes once assigned. A payload naming no updatable fields
// returns ErrNoChanges without touching the store.
func UpdateNamespace(ctx context.Context, ref string, req *NamespaceUpdateRequest) (*models.Namespace, apperrors.Error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Name.IsNil() && req.MDContent.IsNil() && req.Status == nil && req.Active == nil && req.BookID.IsNil() {
		return nil, ErrNoChanges
	}

	ns, err := GetNamespace(ctx, ref)
	if err != nil {
		return nil, err
	}
	if ns.UserID != common.UserIdFromContext(ctx) {
		return nil, ErrNotAuthorized
	}

	if !req.Name.IsNil() {
		if req.Name.Value == "" || len(req.Name.Value) > 50 {
			return nil, ErrValidationFailed.Msg("name failed validation on 'max'")
		}
		ns.Name = req.Name.Value
	}
	if !req.MDContent.IsNil() {
		ns.MDContent = req.MDContent.Value
	}
	if req.Status != nil {
		ns.Status = types.ContentStatus(*req.Status)
	}
	if req.Active != nil {
		ns.Active = *req.Active
	}
	if !req.BookID.IsNil() {
		if req.BookID.Value == "" {
			ns.BookID = uuid.Nil
		} else {
			bookID, errStd := uuid.Parse(req.BookID.Value)
			if errStd != nil {
				return nil, ErrValidationFailed.Msg("book_id is not a valid id")
			}
			ns.BookID = bookID
		}
	}

	if err := db.DB(ctx).UpdateNamespace(ctx, ns); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrNamespaceNotFound
		}
		if errors.Is(err, dberror.ErrInvalidInput) {
			return nil, ErrValidationFailed.Msg(err.Error())
		}
		return nil, err
	}
	return ns, nil
}

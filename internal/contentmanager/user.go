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

type UserUpdateRequest struct {
	Email types.NullableString `json:"email"`
	Bio   types.NullableString `json:"bio"`
}

// GetUser returns the user with the given id.
func GetUser(ctx context.Context, id uuid.UUID) (*models.User, apperrors.Error) {
	u, err := db.DB(ctx).GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetUserByURL resolves a public profile path like "/u/gopher".
func GetUserByURL(ctx context.Context, urlIdentifier string) (*models.User, apperrors.Error) {
	u, err := db.DB(ctx).GetUserByURLIdentifier(ctx, urlIdentifier)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListUsers returns all registered users.
func ListUsers(ctx context.Context) ([]*models.User, apperrors.Error) {
	return db.DB(ctx).ListUsers(ctx)
}

// UpdateUser applies a partial profile update. Only the authenticated
// account itself is addressable; any other id reads as absent.
func UpdateUser(ctx context.Context, id uuid.UUID, req *UserUpdateRequest) (*models.User, apperrors.Error) {
	if req.Email.IsNil() && req.Bio.IsNil() {
		return nil, ErrNoChanges
	}
	if id != common.UserIdFromContext(ctx) {
		return nil, ErrUserNotFound
	}

	u, err := GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if !req.Email.IsNil() {
		if errStd := validate.Var(req.Email.Value, "required,email,max=120"); errStd != nil {
			return nil, ErrValidationFailed.Msg("email failed validation on 'email'")
		}
		u.Email = req.Email.Value
	}
	if !req.Bio.IsNil() {
		u.Bio = req.Bio.Value
	}

	if err := db.DB(ctx).UpdateUser(ctx, u); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrAlreadyExists.Msg("email already registered")
		}
		return nil, err
	}
	return u, nil
}

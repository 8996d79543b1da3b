// Package auth implements registration, login and bearer token handling.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/db"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
	"github.com/mugiliam/contentsrv/pkg/types"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum,lowercase"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Bio      string `json:"bio" validate:"max=4096"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new active user account. The public profile path is
// derived from the username and is unique for the lifetime of the account.
func Register(ctx context.Context, req *RegisterRequest) (*models.User, apperrors.Error) {
	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return nil, ErrRegistration.Msg(strings.ToLower(ve[0].Field()) + " failed validation on '" + ve[0].Tag() + "'")
		}
		return nil, ErrRegistration.Err(err)
	}

	// Friendly pre-checks. The unique constraints remain the final
	// authority under concurrent registration.
	if _, err := db.DB(ctx).GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	}
	if _, err := db.DB(ctx).GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		Username:      req.Username,
		Email:         req.Email,
		URLIdentifier: "/u/" + req.Username,
		Status:        types.AccountStatusActive,
		Bio:           req.Bio,
	}
	if err := user.SetPassword(req.Password); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to hash password")
		return nil, ErrRegistration.Err(err)
	}

	if err := db.DB(ctx).CreateUser(ctx, user); err != nil {
		if errors.Is(err, dberror.ErrAlreadyExists) {
			// Lost the race. Re-check to report the colliding field.
			if _, lookupErr := db.DB(ctx).GetUserByUsername(ctx, req.Username); lookupErr == nil {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.Ctx(ctx).Info().Str("username", user.Username).Msg("registered new user")
	return user, nil
}

// Login verifies the credentials and returns a signed access token for the
// account.
func Login(ctx context.Context, req *LoginRequest) (string, *models.User, apperrors.Error) {
	if err := validate.Struct(req); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	user, err := db.DB(ctx).GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.CheckPassword(req.Password) {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status != types.AccountStatusActive {
		return "", nil, ErrAccountInactive
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to the active account it was issued
// for.
func Authenticate(ctx context.Context, tokenString string) (uuid.UUID, apperrors.Error) {
	userID, err := ParseToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	user, err := db.DB(ctx).GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return uuid.Nil, ErrInvalidToken.Msg("account no longer exists")
		}
		return uuid.Nil, err
	}
	if user.Status != types.AccountStatusActive {
		return uuid.Nil, ErrAccountInactive
	}
	return user.ID, nil
}

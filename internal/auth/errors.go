package auth

import (
	"net/http"

	"github.com/mugiliam/contentsrv/pkg/apperrors"
)

var (
	ErrAuth apperrors.Error = apperrors.New("auth error").SetStatusCode(http.StatusUnauthorized)

	ErrInvalidCredentials apperrors.Error = ErrAuth.New("invalid username or password")
	ErrMissingToken       apperrors.Error = ErrAuth.New("missing bearer token")
	ErrInvalidToken       apperrors.Error = ErrAuth.New("invalid token")
	ErrTokenExpired       apperrors.Error = ErrAuth.New("token has expired")
	ErrAccountInactive    apperrors.Error = ErrAuth.New("account is not active")

	ErrRegistration apperrors.Error = apperrors.New("registration error").SetStatusCode(http.StatusBadRequest)

	ErrUsernameTaken apperrors.Error = ErrRegistration.New("username already taken")
	ErrEmailTaken    apperrors.Error = ErrRegistration.New("email already registered")
)

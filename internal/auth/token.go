package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/config"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
)

// Claims is the payload carried by an access token. The user id travels in
// the "uid" claim; everything else is the registered set.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// IssueToken signs a new HS256 access token for userID with the configured
// TTL.
func IssueToken(userID uuid.UUID) (string, apperrors.Error) {
	ttl := time.Duration(config.Config().Auth.TokenTTL)
	return issueTokenWithExpiry(userID, time.Now().Add(ttl))
}

func issueTokenWithExpiry(userID uuid.UUID, expiresAt time.Time) (string, apperrors.Error) {
	cfg := config.Config().Auth
	if cfg.JWTSecret == "" {
		return "", ErrAuth.Msg("jwt secret is not configured")
	}

	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", ErrAuth.Err(err)
	}
	return signed, nil
}

// ParseToken validates tokenString and returns the user id it was issued
// for.
func ParseToken(tokenString string) (uuid.UUID, apperrors.Error) {
	cfg := config.Config().Auth

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrInvalidToken.Err(err)
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, errStd := uuid.Parse(claims.UserID)
	if errStd != nil {
		return uuid.Nil, ErrInvalidToken.Msg("malformed user id claim")
	}
	return userID, nil
}

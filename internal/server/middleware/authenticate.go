package middleware

import (
	"net/http"
	"strings"

	"github.com/mugiliam/contentsrv/internal/auth"
	"github.com/mugiliam/contentsrv/internal/common"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Authenticate requires a valid bearer token and resolves it to the account
// id on the context. Requests without one are rejected with 401.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.SendError(r, w, auth.ErrMissingToken)
			return
		}
		userID, err := auth.Authenticate(r.Context(), token)
		if err != nil {
			httpx.SendError(r, w, err)
			return
		}
		ctx := common.SetUserIdInContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateOptional resolves a bearer token when one is present but lets
// anonymous requests through. A token that is present and invalid is still
// rejected.
func AuthenticateOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := auth.Authenticate(r.Context(), token)
		if err != nil {
			httpx.SendError(r, w, err)
			return
		}
		ctx := common.SetUserIdInContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

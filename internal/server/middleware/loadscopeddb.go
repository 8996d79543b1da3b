package middleware

import (
	"net/http"

	"github.com/mugiliam/contentsrv/internal/db"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

// LoadScopedDB checks a connection out of the pool for the duration of the
// request and returns it on every exit path.
func LoadScopedDB(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := db.ConnCtx(r.Context())
		d := db.DB(ctx)
		if d == nil {
			httpx.ErrApplicationError("service unavailable").Send(w)
			return
		}
		defer d.Close(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package apis

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// readRequest decodes the JSON body of r into v.
func readRequest(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		return httpx.ErrUnableToReadRequest()
	}
	if len(body) == 0 {
		return httpx.ErrInvalidRequest("request body cannot be empty")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return httpx.ErrInvalidRequest("invalid json in request body")
	}
	return nil
}

// uuidParam reads the named chi URL parameter as a uuid.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, httpx.ErrInvalidRequest(name + " is not a valid id")
	}
	return id, nil
}

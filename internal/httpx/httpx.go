// Package httpx carries the JSON response envelope shared by all handlers.
// Handlers return (*Response, error); WrapHttpRsp turns that into an
// http.HandlerFunc and translates apperrors into structured error replies.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/mugiliam/contentsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

type Response struct {
	StatusCode int
	Location   string
	Response   any
}

type Error struct {
	StatusCode  int
	Description string
}

func (e *Error) Error() string {
	return e.Description
}

func (e *Error) Send(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": e.Description})
}

func ErrInvalidRequest(msg ...string) *Error {
	description := "invalid request"
	if len(msg) > 0 {
		description = msg[0]
	}
	return &Error{StatusCode: http.StatusBadRequest, Description: description}
}

func ErrUnableToReadRequest() *Error {
	return &Error{StatusCode: http.StatusBadRequest, Description: "unable to read request"}
}

func ErrUnauthorized(msg ...string) *Error {
	description := "unauthorized"
	if len(msg) > 0 {
		description = msg[0]
	}
	return &Error{StatusCode: http.StatusUnauthorized, Description: description}
}

func ErrNotFound(msg ...string) *Error {
	description := "not found"
	if len(msg) > 0 {
		description = msg[0]
	}
	return &Error{StatusCode: http.StatusNotFound, Description: description}
}

func ErrApplicationError(msg ...string) *Error {
	description := "internal error"
	if len(msg) > 0 {
		description = msg[0]
	}
	return &Error{StatusCode: http.StatusInternalServerError, Description: description}
}

// SendJsonRsp writes rsp as JSON with the given status code.
func SendJsonRsp(w http.ResponseWriter, statusCode int, rsp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if rsp == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(rsp)
}

// WrapHttpRsp adapts a handler returning (*Response, error) into an
// http.HandlerFunc. Errors are recovered here; nothing propagates past the
// request boundary.
func WrapHttpRsp(h func(r *http.Request) (*Response, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp, err := h(r)
		if err != nil {
			SendError(r, w, err)
			return
		}
		if rsp == nil {
			SendJsonRsp(w, http.StatusOK, nil)
			return
		}
		if rsp.Location != "" {
			w.Header().Set("Location", rsp.Location)
		}
		SendJsonRsp(w, rsp.StatusCode, rsp.Response)
	}
}

// SendError translates err into an error reply. apperrors carry their own
// status code; anything else is a 500.
func SendError(r *http.Request, w http.ResponseWriter, err error) {
	var httpErr *Error
	switch e := err.(type) {
	case *Error:
		httpErr = e
	case apperrors.Error:
		statusCode := e.StatusCode()
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		httpErr = &Error{StatusCode: statusCode, Description: e.Error()}
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("unhandled error in request")
		httpErr = ErrApplicationError()
	}
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}
	httpErr.Send(w)
}

package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	base := New("content error")
	notFound := base.New("not found").SetStatusCode(http.StatusNotFound)

	wrapped := notFound.Msg("namespace not found")
	assert.Equal(t, "namespace not found", wrapped.Error())
	assert.ErrorIs(t, wrapped, notFound)
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode())
}

func TestErrWrapsCauses(t *testing.T) {
	base := New("db error")
	cause := errors.New("connection refused")

	err := base.Err(cause)
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, cause)
}

func TestMsgErr(t *testing.T) {
	base := New("db error")
	cause := errors.New("duplicate key")

	err := base.MsgErr("insert failed", cause)
	assert.Equal(t, "insert failed", err.Error())
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, cause)
}

func TestErrorAll(t *testing.T) {
	base := New("auth error")
	err := base.New("invalid token").Msg("signature mismatch")
	assert.Equal(t, "signature mismatch: invalid token: auth error", err.ErrorAll())
}

func TestStatusCodeInheritance(t *testing.T) {
	base := New("api error").SetStatusCode(http.StatusBadRequest)
	child := base.New("missing field")
	assert.Equal(t, http.StatusBadRequest, child.StatusCode())

	overridden := base.New("not found").SetStatusCode(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, overridden.StatusCode())
}

package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/contentsrv/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestWrapHttpRspSuccess(t *testing.T) {
	h := WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return &Response{
			StatusCode: http.StatusCreated,
			Location:   "/things/1",
			Response:   map[string]string{"name": "thing"},
		}, nil
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest("POST", "/things", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/things/1", rr.Header().Get("Location"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "thing", gjson.Get(rr.Body.String(), "name").String())
}

func TestWrapHttpRspAppError(t *testing.T) {
	appErr := apperrors.New("thing not found").SetStatusCode(http.StatusNotFound)
	h := WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return nil, appErr
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest("GET", "/things/1", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "thing not found", gjson.Get(rr.Body.String(), "error").String())
}

func TestWrapHttpRspUnknownError(t *testing.T) {
	h := WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return nil, assert.AnError
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal error", gjson.Get(rr.Body.String(), "error").String())
}

func TestErrorSend(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrUnauthorized("missing bearer token").Send(rr)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "missing bearer token", gjson.Get(rr.Body.String(), "error").String())
}

func TestAppErrorWithoutStatusIs500(t *testing.T) {
	h := WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return nil, apperrors.New("boom")
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

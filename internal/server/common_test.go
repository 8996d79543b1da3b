package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/config"
	"github.com/mugiliam/contentsrv/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// newDb loads the default configuration and initializes the pool. Tests
// that need the store are skipped when no database is configured.
func newDb(t *testing.T) context.Context {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}
	if os.Getenv("JWT_SECRET_KEY") == "" {
		t.Setenv("JWT_SECRET_KEY", "server-test-secret")
	}
	config.LoadDefault()

	ctx := context.Background()
	require.NoError(t, db.Init(ctx))
	t.Cleanup(db.Shutdown)
	return ctx
}

func executeTestRequest(t *testing.T, req *http.Request, token string) *httptest.ResponseRecorder {
	s, err := CreateNewServer()
	assert.NoError(t, err, "create new server")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Mount Handlers
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotNil(t, h.Get("X-Request-ID"), "No Request Id")
}

func setRequestBodyAndHeader(t *testing.T, req *http.Request, data any) {
	var jsonData []byte
	switch d := data.(type) {
	case string:
		jsonData = []byte(d)
	default:
		var err error
		jsonData, err = json.Marshal(data)
		assert.NoError(t, err, "Failed to marshal data into JSON")
	}

	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))
	req.Header.Set("Content-Type", "application/json")
}

// uniqueName returns a lowercase alphanumeric name that will not collide
// across test runs against a persistent database.
func uniqueName(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// registerTestUser creates a user through the API and returns its username
// and a valid access token.
func registerTestUser(t *testing.T) (username, token string) {
	username = uniqueName("user")
	password := "a-strong-password"

	httpReq, _ := http.NewRequest("POST", "/api/v1/register", nil)
	setRequestBodyAndHeader(t, httpReq, map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	response := executeTestRequest(t, httpReq, "")
	require.Equal(t, http.StatusCreated, response.Code, "register: %s", response.Body.String())

	httpReq, _ = http.NewRequest("POST", "/api/v1/login", nil)
	setRequestBodyAndHeader(t, httpReq, map[string]string{
		"username": username,
		"password": password,
	})
	response = executeTestRequest(t, httpReq, "")
	require.Equal(t, http.StatusOK, response.Code, "login: %s", response.Body.String())

	token = gjson.Get(response.Body.String(), "access_token").String()
	require.NotEmpty(t, token)
	return username, token
}

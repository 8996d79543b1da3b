package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"empty", RegisterRequest{}},
		{"short username", RegisterRequest{Username: "ab", Email: "a@b.com", Password: "a-strong-password"}},
		{"uppercase username", RegisterRequest{Username: "Alice", Email: "a@b.com", Password: "a-strong-password"}},
		{"username with spaces", RegisterRequest{Username: "a lice", Email: "a@b.com", Password: "a-strong-password"}},
		{"bad email", RegisterRequest{Username: "alice", Email: "not-an-email", Password: "a-strong-password"}},
		{"short password", RegisterRequest{Username: "alice", Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Register(ctx, &tt.req)
			require.NotNil(t, err)
			assert.ErrorIs(t, err, ErrRegistration)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	ctx := context.Background()

	// Missing fields fail closed, as invalid credentials.
	_, _, err := Login(ctx, &LoginRequest{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")
	config.LoadDefault()

	userID := uuid.New()
	token, err := IssueToken(userID)
	require.Nil(t, err)
	require.NotEmpty(t, token)

	parsedID, err := ParseToken(token)
	require.Nil(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")
	config.LoadDefault()

	token, err := issueTokenWithExpiry(uuid.New(), time.Now().Add(-time.Minute))
	require.Nil(t, err)

	_, err = ParseToken(token)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")
	config.LoadDefault()

	token, err := IssueToken(uuid.New())
	require.Nil(t, err)

	t.Setenv("JWT_SECRET_KEY", "a-different-secret")
	config.LoadDefault()

	_, err = ParseToken(token)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")
	config.LoadDefault()

	for _, tok := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := ParseToken(tok)
		assert.NotNil(t, err, "token %q should not parse", tok)
	}
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	config.LoadDefault()

	_, err := IssueToken(uuid.New())
	assert.NotNil(t, err)
}

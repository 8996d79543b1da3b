package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "pw1")

	ok, err := VerifyPassword("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	for _, wrong := range []string{
		"",
		"correct horse battery stapl",
		"correct horse battery staple ",
		strings.Repeat("x", 4096),
	} {
		ok, err := VerifyPassword(wrong, hash)
		require.NoError(t, err)
		assert.False(t, ok, "password %q must not verify", wrong)
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	ok, err := VerifyPassword("same password", h1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = VerifyPassword("same password", h2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	for _, h := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$not-base64!$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	} {
		ok, err := VerifyPassword("pw", h)
		assert.Error(t, err, "hash %q", h)
		assert.False(t, ok)
	}
}

func TestLongAndUnicodePasswords(t *testing.T) {
	for _, pw := range []string{
		strings.Repeat("a", 1024),
		"пароль-密码-🔑",
	} {
		hash, err := HashPassword(pw)
		require.NoError(t, err)
		ok, err := VerifyPassword(pw, hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

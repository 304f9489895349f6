package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("testsecret"))
	require.NoError(t, err)
	return token
}

func TestContextRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "token")
	ctx := NewContext(file)

	require.NoError(t, ctx.Load())
	require.False(t, ctx.LoggedIn())

	require.NoError(t, ctx.SetToken("abc123"))
	require.True(t, ctx.LoggedIn())

	info, err := os.Stat(file)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded := NewContext(file)
	require.NoError(t, reloaded.Load())
	require.Equal(t, "abc123", reloaded.Token())

	require.NoError(t, ctx.Clear())
	require.False(t, ctx.LoggedIn())
	_, err = os.Stat(file)
	require.ErrorIs(t, err, os.ErrNotExist)

	// clearing twice must not fail
	require.NoError(t, ctx.Clear())
}

func TestContextLoadTrimsWhitespace(t *testing.T) {
	file := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(file, []byte("tok-1\n"), 0o600))

	ctx := NewContext(file)
	require.NoError(t, ctx.Load())
	require.Equal(t, "tok-1", ctx.Token())
}

func TestExpiresWithin(t *testing.T) {
	ctx := NewContext(filepath.Join(t.TempDir(), "token"))

	// no token at all
	require.True(t, ctx.ExpiresWithin(time.Minute))

	require.NoError(t, ctx.SetToken(signedToken(t, 24*time.Hour)))
	require.False(t, ctx.ExpiresWithin(time.Hour))
	require.True(t, ctx.ExpiresWithin(48*time.Hour))

	require.NoError(t, ctx.SetToken(signedToken(t, -time.Hour)))
	require.True(t, ctx.ExpiresWithin(time.Minute))

	require.NoError(t, ctx.SetToken("not-a-jwt"))
	require.True(t, ctx.ExpiresWithin(time.Minute))
}

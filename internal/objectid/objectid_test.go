package objectid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	require.True(t, IsValid("65a1b2c3d4e5f60718293a4b"))
	require.True(t, IsValid("65A1B2C3D4E5F60718293A4B"))

	require.False(t, IsValid(""))
	require.False(t, IsValid("65a1b2c3d4e5f60718293a4"))
	require.False(t, IsValid("65a1b2c3d4e5f60718293a4bc"))
	require.False(t, IsValid("65a1b2c3d4e5f60718293a4g"))
	require.False(t, IsValid(strings.Repeat(" ", 24)))
}

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tragkas/portfolio/internal/auth"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	require.True(t, auth.CheckPassword(hash, "hunter2"))
	require.False(t, auth.CheckPassword(hash, "hunter3"))
	require.False(t, auth.CheckPassword("not-a-hash", "hunter2"))
}

package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/tragkas/portfolio/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("someSecret")

	tokenString, err := auth.NewToken(7, "admin", secret)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(tokenString, secret)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.UserID)
	require.Equal(t, "admin", claims.Username)
	require.WithinDuration(t, time.Now().Add(auth.TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateWrongSecret(t *testing.T) {
	tokenString, err := auth.NewToken(1, "admin", []byte("someSecret"))
	require.NoError(t, err)

	claims, err := auth.ValidateToken(tokenString, []byte("wrongSecret"))
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestValidateExpiredToken(t *testing.T) {
	secret := []byte("someSecret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID:   1,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString(secret)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(tokenString, secret)
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestValidateRejectsOtherSigningMethod(t *testing.T) {
	// alg=none tokens must never validate
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{UserID: 1, Username: "admin"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(tokenString, []byte("someSecret"))
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestValidateGarbage(t *testing.T) {
	claims, err := auth.ValidateToken("not-a-token", []byte("someSecret"))
	require.Error(t, err)
	require.Nil(t, claims)
}

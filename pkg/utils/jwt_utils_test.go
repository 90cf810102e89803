package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	locationID := int64(9)
	token, err := GenerateAccessToken(42, "user@example.com", "Store Manager", &locationID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Store Manager", claims.Role)
	require.NotNil(t, claims.LocationID)
	assert.Equal(t, int64(9), *claims.LocationID)
}

func TestAccessTokenWithoutLocation(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin@example.com", "Super Admin", nil)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.LocationID)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	token, err := GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecretKey())
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

// The signing key must be read at token time, not package init: the secret
// usually arrives via .env, which main loads long after this package is
// initialized.
func TestSecretConfiguredAfterInitIsUsed(t *testing.T) {
	t.Setenv("JWT_SECRET", "operator-secret")

	token, err := GenerateAccessToken(1, "user@example.com", "Cashier", nil)
	require.NoError(t, err)

	parseWith := func(secret string) error {
		_, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		return err
	}
	assert.NoError(t, parseWith("operator-secret"))
	assert.Error(t, parseWith("holdup-dev-jwt-secret-change-me"))

	// Validation goes through the same per-call read.
	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestValidateToken_WrongKey(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("665f1c2e9b1d4a0012345678", "owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2e9b1d4a0012345678", claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)

	_, err = ParseJWT("")
	assert.Error(t, err)
}

func TestParseJWTRejectsTamperedSignature(t *testing.T) {
	claims := JWTClaims{
		UserID: "665f1c2e9b1d4a0012345678",
		Email:  "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some other secret"))
	require.NoError(t, err)

	_, err = ParseJWT(forged)
	assert.Error(t, err)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	claims := JWTClaims{
		UserID: "665f1c2e9b1d4a0012345678",
		Email:  "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString(getJWTSecret())
	require.NoError(t, err)

	_, err = ParseJWT(expired)
	assert.Error(t, err)
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(64)
	b := GenerateRandomString(64)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

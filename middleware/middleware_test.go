package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "jdoe", "instructor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "instructor", claims.Role)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)

	_, err = VerifyJWT("")
	assert.Error(t, err)
}

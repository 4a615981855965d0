package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("sess-1", "test-secret", 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sessionID, err := ParseSessionJWT(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)
}

func TestSessionJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("sess-1", "test-secret", 1)
	assert.NoError(t, err)

	_, err = ParseSessionJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestSessionJWTRejectsGarbage(t *testing.T) {
	_, err := ParseSessionJWT("not-a-jwt", "test-secret")
	assert.Error(t, err)
}

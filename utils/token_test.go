package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueAccessToken("u1-uuid", "u1@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1-uuid", claims["uuid"])
	assert.Equal(t, "u1@example.com", claims["email"])
	assert.Equal(t, "customer", claims["role"])
}

func TestVerifyAccessTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := IssueAccessToken("u1-uuid", "u1@example.com", "customer")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestIssueAccessTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken("u1-uuid", "u1@example.com", "customer")
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, VerifyPassword(hash, "wrong-pass"))
}

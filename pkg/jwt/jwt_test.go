package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, expireAt, err := GenerateToken("secret", 42, 24)
	require.NoError(t, err)
	assert.False(t, expireAt.IsZero())

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("secret", 42, 24)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	require.Error(t, err)
}

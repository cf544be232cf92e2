package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemanahmaemanah39-collab/venaules/pkg/config"
)

func testUtil(key string) *JWTUtil {
	return NewJWTUtil(&config.JWTConfig{
		SigningKey:      key,
		ExpirationHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	util := testUtil("test-signing-key")

	perms := []string{"Dashboard", "Clients"}
	token, err := util.GenerateToken("budi@example.com", "user-1", "sess-1", "Member", perms)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "Member", claims.Role)
	assert.Equal(t, perms, claims.Permissions)
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := testUtil("key-one").GenerateToken("a@b.co", "u", "s", "Admin", nil)
	require.NoError(t, err)

	_, err = testUtil("key-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := testUtil("key").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateTokenWithoutConfig(t *testing.T) {
	util := &JWTUtil{}
	_, err := util.GenerateToken("a@b.co", "u", "s", "Member", nil)
	assert.Error(t, err)
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagelink_backend/internal/config"
	"stagelink_backend/internal/models"
)

func setupTestConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://unused")
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("JWT_TTL_MINUTES", "5")
	config.LoadConfig()
}

func TestTokenRoundtrip(t *testing.T) {
	setupTestConfig(t)

	token, err := GenerateToken(42, models.UserRoleDistributor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "distributor", claims.Role)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	setupTestConfig(t)

	token, err := GenerateToken(42, models.UserRolePerformer)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupTestConfig(t)

	token, err := GenerateToken(42, models.UserRolePerformer)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")
	config.LoadConfig()

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
}

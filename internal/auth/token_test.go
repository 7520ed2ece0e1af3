package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	Init("test-secret", time.Hour)

	token, err := GenerateToken("user-1", string(models.UserRoleEmployer))
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "EMPLOYER", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	Init("first-secret", time.Hour)
	token, err := GenerateToken("user-1", "TALENT")
	require.NoError(t, err)

	Init("second-secret", time.Hour)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid, "токен с чужой подписью не должен приниматься")
}

func TestParseToken_Expired(t *testing.T) {
	Init("test-secret", time.Nanosecond)
	token, err := GenerateToken("user-1", "TALENT")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	Init("test-secret", time.Hour)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(models.UserRoleTalent, PermPayoutsRequest))
	assert.False(t, HasPermission(models.UserRoleTalent, PermJobsWrite))
	assert.True(t, HasPermission(models.UserRoleAdmin, PermJobsWrite), "админу доступно всё")
	assert.False(t, HasPermission(models.UserRoleUser, PermJobsApply))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct-horse", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.Error(t, ValidatePassword("short"))
}

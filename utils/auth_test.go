package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash := HashPassword("admin123")

	assert.NotEqual(t, "admin123", hash)
	assert.Equal(t, hash, HashPassword("admin123"))
	assert.True(t, VerifyPassword("admin123", hash))
	assert.False(t, VerifyPassword("admin124", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.SalesPerson{
		ID:       primitive.NewObjectID(),
		UserCode: "S001",
		Name:     "Asha",
		Role:     models.UserRoleSales,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, "S001", claims["userCode"])
	assert.Equal(t, "Asha", claims["name"])
	assert.Equal(t, string(models.UserRoleSales), claims["role"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestHasPermission(t *testing.T) {
	// admin may do anything, including actions sales cannot
	assert.True(t, HasPermission(models.UserRoleAdmin, "records", "delete"))
	assert.True(t, HasPermission(models.UserRoleAdmin, "salesPersons", "create"))

	assert.True(t, HasPermission(models.UserRoleSales, "records", "read"))
	assert.True(t, HasPermission(models.UserRoleSales, "records", "followup"))
	assert.True(t, HasPermission(models.UserRoleSales, "clients", "update"))
	assert.True(t, HasPermission(models.UserRoleSales, "reports", "read"))

	assert.False(t, HasPermission(models.UserRoleSales, "records", "delete"))
	assert.False(t, HasPermission(models.UserRoleSales, "salesPersons", "create"))
	assert.False(t, HasPermission(models.UserRoleSales, "remarks", "delete"))
	assert.False(t, HasPermission("unknown", "records", "read"))
}

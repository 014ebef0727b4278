package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	assert.NoError(t, InitJWT("unit-test-secret", 60))

	companyID := uint(7)
	token, err := GenerateToken(42, "user@example.com", "company_admin", &companyID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "company_admin", claims.Role)
	assert.NotNil(t, claims.CompanyID)
	assert.Equal(t, uint(7), *claims.CompanyID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	assert.NoError(t, InitJWT("unit-test-secret", 60))

	_, err := ParseToken("definitely.not.a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	assert.NoError(t, InitJWT("secret-one", 60))
	token, err := GenerateToken(1, "a@b.c", "user", nil)
	assert.NoError(t, err)

	assert.NoError(t, InitJWT("secret-two", 60))
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestInitJWTRequiresSecret(t *testing.T) {
	assert.Error(t, InitJWT("", 60))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

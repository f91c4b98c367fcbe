package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHashPassword_RoundTrip - хеш принимает исходный пароль
func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("super_password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
}

// TestCheckPasswordHash_WrongPassword - чужой пароль не проходит
func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password")
	assert.NoError(t, err)

	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

// TestHashPassword_UniqueSalt - одинаковые пароли дают разные хеши
func TestHashPassword_UniqueSalt(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	assert.NoError(t, err)
	second, err := HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

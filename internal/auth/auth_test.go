package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	token, err := service.GenerateToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "ok", claims.Status)
	assert.Greater(t, claims.Exp, time.Now().Unix())
}

func TestValidateToken_BearerPrefix(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	token, err := service.GenerateToken()
	assert.NoError(t, err)

	claims, err := service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "ok", claims.Status)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService("test-secret", -time.Minute)
	token, err := service.GenerateToken()
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService("secret-one", time.Hour)
	verifier := NewService("secret-two", time.Hour)

	token, err := issuer.GenerateToken()
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	t.Run("valid header", func(t *testing.T) {
		token, err := service.ExtractTokenFromHeader("Bearer abc123")
		assert.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := service.ExtractTokenFromHeader("")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := service.ExtractTokenFromHeader("Basic abc123")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no token part", func(t *testing.T) {
		_, err := service.ExtractTokenFromHeader("Bearer")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

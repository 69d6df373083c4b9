package utils

import (
	"testing"
	"time"

	"fotoagenda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateToken("owner", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims["sub"])
	assert.Equal(t, RoleAdmin, claims["role"])
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateToken("owner", RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTokensRequireSecret(t *testing.T) {
	config.AppConfig.JWTSecret = ""
	_, err := GenerateToken("owner", RoleAdmin, time.Hour)
	assert.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "nirvix", cfg.Database.Name)
	assert.Empty(t, cfg.Redis.Addr, "the queue is off unless REDIS_ADDR is set")
	assert.Equal(t, "tls", cfg.SMTP.Encryption)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.MailEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_ENCRYPTION", "ssl")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "ssl", cfg.SMTP.Encryption)
	assert.True(t, cfg.MailEnabled())
}

func TestLoadRejectsBadEncryption(t *testing.T) {
	t.Setenv("SMTP_ENCRYPTION", "starttls-maybe")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_ENCRYPTION")
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("SOME_INT", "not a number")
	assert.Equal(t, 42, getEnvAsInt("SOME_INT", 42), "malformed values fall back to the default")

	t.Setenv("SOME_INT", "7")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 42))
}

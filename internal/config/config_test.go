package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "dapuribu")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("WHATSAPP_PHONE", "6281945062598")

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "6281945062598", cfg.WhatsAppPhone)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "static", cfg.UploadDir)
}

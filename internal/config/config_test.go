package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TIMEZONE", "DB_DRIVER", "DB_PATH", "PROXY_HEADER"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Asia/Tbilisi", cfg.Timezone)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "instance/requests.db", cfg.Database.Path)
	assert.Empty(t, cfg.ProxyHeader)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "Asia/Tbilisi"}
	loc, err := cfg.Location()
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Tbilisi", loc.String())

	cfg.Timezone = "Nowhere/Invalid"
	_, err = cfg.Location()
	assert.Error(t, err)
}

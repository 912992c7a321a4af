package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "http://catalog:4000/")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://catalog:4000/api", cfg.APIEndpoint())
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.DeleteTTL)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Empty(t, cfg.PostgresDSN)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "http://env")
	t.Setenv("CATALOG_API_PREFIX", "")
	t.Setenv("CATALOG_API_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ADMIN_ADDR", ":9000")

	cfg, err := Load([]string{"--addr", ":7000", "--api-url", "http://flag/"})
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, "http://flag", cfg.APIEndpoint())
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "")
	_, err := Load(nil)
	assert.ErrorContains(t, err, "CATALOG_API_URL")

	t.Setenv("CATALOG_API_URL", "http://x")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load(nil)
	assert.ErrorContains(t, err, "LOG_LEVEL")

	_, err = Load([]string{"--nope"})
	assert.Error(t, err)
}

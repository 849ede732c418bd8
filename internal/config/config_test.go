package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KAS_API_BASE_URL", "http://kas.local/api/")
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://kas.local/api", cfg.KasAPI.BaseURL)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.KasAPI.HasCredentials())
	assert.Equal(t, "Asia/Jakarta", cfg.Locale.TimeZone)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KAS_API_USERNAME", "admin")
	t.Setenv("KAS_API_PASSWORD", "secret")
	t.Setenv("REKAPAN_CRON_EXPRESSION", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.KasAPI.HasCredentials())
	assert.Empty(t, cfg.Scheduler.RekapanCronExpression)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOriginList())
}

func TestLoadRejectsEmptyBaseURL(t *testing.T) {
	t.Setenv("KAS_API_BASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "kas", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=kas sslmode=disable", d.GetDSN())
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "content")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "cars")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "4242", cfg.HTTPPort)
	assert.True(t, cfg.HumanizeSanitize)
	assert.Equal(t, 0.6, cfg.StarterThreshold)
	assert.Equal(t, 0.6, cfg.TouchThreshold)
	assert.Equal(t, 2, cfg.HumanizeConcurrency)
	assert.Equal(t, 50, cfg.PreviewMinLength)
	assert.Equal(t, 100, cfg.SampleLength)
	assert.Empty(t, cfg.HumanizeCron)
	assert.False(t, cfg.ReportsEnabled())
	assert.Equal(t, "host=localhost user=content password=secret dbname=cars port=5432 sslmode=disable", cfg.DSN())
}

func TestLoadMissingRequired(t *testing.T) {
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		t.Cleanup(func() { os.Setenv("DB_HOST", v) })
	}
	require.NoError(t, os.Unsetenv("DB_HOST"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	setRequired(t)
	t.Setenv("HUMANIZE_TOUCH_THRESHOLD", "1.5")

	_, err := Load()
	assert.ErrorContains(t, err, "HUMANIZE_TOUCH_THRESHOLD")
}

func TestReportsEnabled(t *testing.T) {
	cfg := &Config{ReportS3Bucket: "reports", ReportS3URL: "https://s3.example.com"}
	assert.True(t, cfg.ReportsEnabled())
}

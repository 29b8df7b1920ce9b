package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_LoadsFileAndDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata/config.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "file::memory:", cfg.DB.ConnectionString)
	assert.Equal(t, "http://jobspy.test", cfg.Provider.URL)
	assert.Equal(t, float32(2), cfg.Provider.MaxRequestsPerSecond)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 4, cfg.Scraper.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Scraper.JitterMin)
	assert.Equal(t, 7*time.Second, cfg.Scraper.RateLimitDelay)
	assert.Equal(t, 14, cfg.Scraper.RetentionDays)
	assert.Equal(t, "0 * * * *", cfg.Scheduler.ScrapeCron)

	// not present in the file
	assert.Equal(t, 168, cfg.Scraper.HoursOld)
	assert.Equal(t, 20, cfg.Scraper.DefaultResults)
	assert.Equal(t, "USA", cfg.Scraper.DefaultCountry)
	assert.Equal(t, "30 3 * * *", cfg.Scheduler.CleanupCron)
	assert.False(t, cfg.AI.Enabled())
	assert.False(t, cfg.Notifier.Enabled())
}

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata/config.yaml")
	t.Setenv("DATABASE_URL", "postgres://ingest@db/jobs")
	t.Setenv("DB_CONNECTION_STRING", "ignored")
	t.Setenv("JOBSPY_URL", "http://jobspy.override")
	t.Setenv("JOBSPY_API_KEY", "key")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("TG_TOKEN", "token")
	t.Setenv("TG_CHAT_ID", "-100123")
	t.Setenv("AI_KEY", "ai")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://ingest@db/jobs", cfg.DB.ConnectionString)
	assert.Equal(t, "http://jobspy.override", cfg.Provider.URL)
	assert.Equal(t, "key", cfg.Provider.APIKey)
	assert.Equal(t, LevelError, cfg.Logger.LogLevel)
	assert.Equal(t, "token", cfg.Notifier.Token)
	assert.Equal(t, int64(-100123), cfg.Notifier.ChatID)
	assert.True(t, cfg.Notifier.Enabled())
	assert.True(t, cfg.AI.Enabled())
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
}

func Test_Config_MissingDatabaseIsAnError(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_CONNECTION_STRING", "")

	_, err := loadConfig("testdata/absent.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func Test_Config_MissingExplicitFileIsAnError(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata/absent.yaml")
	t.Setenv("DATABASE_URL", "file::memory:")

	_, err := Load()
	assert.Error(t, err)
}

func Test_ScraperConfig_Validate(t *testing.T) {
	cfg := ScraperConfig{MaxAttempts: 3, JitterMin: 2 * time.Second, JitterMax: 5 * time.Second,
		RetentionDays: 30, DefaultResults: 20}
	assert.NoError(t, cfg.validate())

	cfg.JitterMax = time.Second
	assert.Error(t, cfg.validate())

	cfg.JitterMax = 5 * time.Second
	cfg.MaxAttempts = 0
	assert.Error(t, cfg.validate())
}

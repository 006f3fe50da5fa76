package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB_NAME", "")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "")
	t.Setenv("GOOGLE_SHEET_PLAN_LOG_ID", "")
	t.Setenv("ROTATION_CRON_SCHEDULE", "")
	t.Setenv("NOTIFY_WEBHOOK_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "grazeplan", cfg.MongoDB.DBName)
	require.Equal(t, "0 6 * * 1", cfg.Rotation.CronSchedule)
	require.False(t, cfg.SheetsEnabled())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DB_NAME", "ranch")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/etc/creds.json")
	t.Setenv("GOOGLE_SHEET_PLAN_LOG_ID", "sheet-123")
	t.Setenv("ROTATION_CRON_SCHEDULE", "0 7 * * 2")
	t.Setenv("NOTIFY_WEBHOOK_URL", "https://hooks.example.com/rotation")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	require.Equal(t, "ranch", cfg.MongoDB.DBName)
	require.True(t, cfg.SheetsEnabled())
	require.Equal(t, "https://hooks.example.com/rotation", cfg.Notify.WebhookURL)
}

func TestValidate_RejectsPartialSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/etc/creds.json")
	t.Setenv("GOOGLE_SHEET_PLAN_LOG_ID", "")

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be set together")
}

func TestValidate_NilConfig(t *testing.T) {
	var cfg *Config
	require.Error(t, cfg.Validate())
}

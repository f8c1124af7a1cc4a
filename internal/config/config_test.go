package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 20, cfg.Import.PreviewRows)
	assert.Equal(t, 10*time.Minute, cfg.Insights.CacheTTL)
	assert.Equal(t, 6, cfg.Insights.DefaultLookbackMonths)
	assert.Equal(t, DefaultDetectorsConfig(), cfg.Detectors)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/insights-test.db")
	t.Setenv("INSIGHTS_CACHE_TTL", "90s")
	t.Setenv("SUBSCRIPTION_AMOUNT_TOLERANCE", "0.05")
	t.Setenv("ANOMALY_SIGMA_MULTIPLE", "3")
	t.Setenv("LEAK_TOP_N", "10")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("IMPORT_PREVIEW_ROWS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/insights-test.db", cfg.Database.DSN())
	assert.Equal(t, 90*time.Second, cfg.Insights.CacheTTL)
	assert.Equal(t, 0.05, cfg.Detectors.Subscription.AmountTolerance)
	assert.Equal(t, 3.0, cfg.Detectors.Anomaly.SigmaMultiple)
	assert.Equal(t, 10, cfg.Detectors.Leak.TopN)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 20, cfg.Import.PreviewRows, "unparseable values fall back to defaults")
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_PORT=9191\nLEAK_TOP_N=3\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LEAK_TOP_N")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Detectors.Leak.TopN)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestDatabaseConfig_DSN_Postgres(t *testing.T) {
	c := DatabaseConfig{
		Driver: DriverPostgres, Host: "db", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=require", c.DSN())
}

func TestDetectorsConfig_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detectors.yaml")
	yamlDoc := `
subscription:
  min_occurrences: 4
  periods:
    - frequency: monthly
      min_days: 26
      max_days: 33
anomaly:
  baseline_months: 12
leak:
  top_n: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	d := DefaultDetectorsConfig()
	require.NoError(t, d.LoadFile(path))

	assert.Equal(t, 4, d.Subscription.MinOccurrences)
	assert.Equal(t, 0.10, d.Subscription.AmountTolerance, "absent keys keep their values")
	require.Len(t, d.Subscription.Periods, 1)
	assert.Equal(t, PeriodBand{Frequency: "monthly", MinDays: 26, MaxDays: 33}, d.Subscription.Periods[0])
	assert.Equal(t, 12, d.Anomaly.BaselineMonths)
	assert.Equal(t, 3, d.Anomaly.MinSamples)
	assert.Equal(t, 3, d.Leak.TopN)
	assert.NoError(t, d.Validate())
}

func TestDetectorsConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := DefaultDetectorsConfig()
	want.Leak.TopN = 7
	require.NoError(t, want.Save(path))

	var got DetectorsConfig
	require.NoError(t, got.LoadFile(path))
	assert.Equal(t, want, got)
}

func TestDetectorsConfig_LoadFileErrors(t *testing.T) {
	d := DefaultDetectorsConfig()
	assert.ErrorContains(t, d.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")), "reading detector config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("subscription: [unclosed"), 0o600))
	assert.ErrorContains(t, d.LoadFile(bad), "parsing detector config")
}

func TestDetectorsConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *DetectorsConfig)
	}{
		{"too few occurrences", func(d *DetectorsConfig) { d.Subscription.MinOccurrences = 1 }},
		{"negative tolerance", func(d *DetectorsConfig) { d.Subscription.AmountTolerance = -0.1 }},
		{"no periods", func(d *DetectorsConfig) { d.Subscription.Periods = nil }},
		{"inverted period", func(d *DetectorsConfig) {
			d.Subscription.Periods = []PeriodBand{{Frequency: "monthly", MinDays: 32, MaxDays: 27}}
		}},
		{"zero baseline", func(d *DetectorsConfig) { d.Anomaly.BaselineMonths = 0 }},
		{"single sample", func(d *DetectorsConfig) { d.Anomaly.MinSamples = 1 }},
		{"mean multiple of one", func(d *DetectorsConfig) { d.Anomaly.MeanMultiple = 1 }},
		{"zero top n", func(d *DetectorsConfig) { d.Leak.TopN = 0 }},
	}

	assert.NoError(t, DefaultDetectorsConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultDetectorsConfig()
			tt.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}
}

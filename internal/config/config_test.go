package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffee-insights/internal/analysis"
	"coffee-insights/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.FileEnv, "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sidraaazam/coffee-sales-insights-report", cfg.Dataset.ID)
	assert.Equal(t, filepath.Join("data", "Coffe_sales.csv"), cfg.RawPath())
	assert.Equal(t, filepath.Join("data", "cafe_df.csv"), cfg.DerivedPath())
	assert.Equal(t, filepath.Join("data", "relatorio.xlsx"), cfg.WorkbookPath())
	assert.Equal(t, analysis.DefaultOptions(), cfg.Options())
	assert.Equal(t, ":8081", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfigFile(t, `
dataset:
  data_dir: /tmp/coffee
  skip_download: true
analysis:
  peak_sigma: 3
  rolling_window: 14
kaggle:
  timeout: 30s
`)
	t.Setenv(config.FileEnv, path)
	t.Setenv("COFFEE_ANALYSIS_ROLLING_WINDOW", "28")
	t.Setenv("KAGGLE_USERNAME", "barista")
	t.Setenv("KAGGLE_KEY", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/coffee", cfg.Dataset.DataDir)
	assert.True(t, cfg.Dataset.SkipDownload)
	assert.Equal(t, 3.0, cfg.Analysis.PeakSigma)
	assert.Equal(t, 28, cfg.Analysis.RollingWindow)
	assert.Equal(t, 0.05, cfg.Analysis.LowVolumeRatio)
	assert.Equal(t, 30*time.Second, cfg.Kaggle.Timeout)
	assert.Equal(t, "barista", cfg.Kaggle.Username)
	assert.Equal(t, "secret", cfg.Kaggle.Key)
	assert.Equal(t, "Coffe_sales.csv", cfg.Dataset.RawFile)
}

func TestLoad_PrefixedCredentialsWin(t *testing.T) {
	t.Setenv(config.FileEnv, "")
	t.Setenv("KAGGLE_USERNAME", "barista")
	t.Setenv("COFFEE_KAGGLE_USERNAME", "manager")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "manager", cfg.Kaggle.Username)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{
			name: "invalid ratio",
			env:  map[string]string{"COFFEE_ANALYSIS_LOW_VOLUME_RATIO": "1.5"},
		},
		{
			name: "unparsable window",
			env:  map[string]string{"COFFEE_ANALYSIS_ROLLING_WINDOW": "seven"},
		},
		{
			name: "unknown log level",
			env:  map[string]string{"COFFEE_LOGGING_LEVEL": "verbose"},
		},
		{
			name: "malformed yaml",
			file: "analysis: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.FileEnv, "")
			if tt.file != "" {
				t.Setenv(config.FileEnv, writeConfigFile(t, tt.file))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(config.FileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

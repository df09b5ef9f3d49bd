// Package config loads the settings shared by the coffee-etl and
// coffee-report commands.
//
// Values are resolved in order: defaults, an optional YAML file named by
// COFFEE_CONFIG_FILE, then environment variables prefixed with COFFEE_.
// KAGGLE_USERNAME and KAGGLE_KEY are honoured for the dataset credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"coffee-insights/internal/analysis"
)

const (
	// Prefix is the environment variable prefix of all settings.
	Prefix = "COFFEE"
	// FileEnv names the variable holding the optional YAML config path.
	FileEnv = "COFFEE_CONFIG_FILE"
)

// Config represents the complete application configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset" envconfig:"DATASET"`
	Kaggle   KaggleConfig   `yaml:"kaggle" envconfig:"KAGGLE"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
}

// DatasetConfig locates the raw and derived files.
type DatasetConfig struct {
	ID           string `yaml:"id" envconfig:"ID" validate:"required"`
	RawFile      string `yaml:"raw_file" envconfig:"RAW_FILE" validate:"required"`
	DataDir      string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	DerivedFile  string `yaml:"derived_file" envconfig:"DERIVED_FILE" validate:"required"`
	WorkbookFile string `yaml:"workbook_file" envconfig:"WORKBOOK_FILE" validate:"required"`
	SkipDownload bool   `yaml:"skip_download" envconfig:"SKIP_DOWNLOAD"`
}

// KaggleConfig holds the dataset API endpoint and credentials.
type KaggleConfig struct {
	BaseURL  string        `yaml:"base_url" envconfig:"BASE_URL" validate:"required,url"`
	Username string        `yaml:"username" envconfig:"USERNAME"`
	Key      string        `yaml:"key" envconfig:"KEY"`
	Timeout  time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
}

// AnalysisConfig tunes the report thresholds.
type AnalysisConfig struct {
	LowVolumeRatio float64 `yaml:"low_volume_ratio" envconfig:"LOW_VOLUME_RATIO" validate:"gt=0,lt=1"`
	PeakSigma      float64 `yaml:"peak_sigma" envconfig:"PEAK_SIGMA" validate:"gte=0"`
	RollingWindow  int     `yaml:"rolling_window" envconfig:"ROLLING_WINDOW" validate:"gte=1"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// ServerConfig contains the report HTTP server configuration.
type ServerConfig struct {
	Address         string        `yaml:"address" envconfig:"ADDRESS" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := analysis.DefaultOptions()
	return Config{
		Dataset: DatasetConfig{
			ID:           "sidraaazam/coffee-sales-insights-report",
			RawFile:      "Coffe_sales.csv",
			DataDir:      "data",
			DerivedFile:  "cafe_df.csv",
			WorkbookFile: "relatorio.xlsx",
		},
		Kaggle: KaggleConfig{
			BaseURL: "https://www.kaggle.com/api/v1",
			Timeout: 2 * time.Minute,
		},
		Analysis: AnalysisConfig{
			LowVolumeRatio: opts.LowVolumeRatio,
			PeakSigma:      opts.PeakSigma,
			RollingWindow:  opts.RollingWindow,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:         ":8081",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load resolves the configuration from defaults, file and environment.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("KAGGLE", &cfg.Kaggle); err != nil {
		return nil, fmt.Errorf("failed to load kaggle credentials from env: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays the YAML file at path on cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks every setting against its constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// RawPath is where the downloaded CSV is expected.
func (c *Config) RawPath() string {
	return filepath.Join(c.Dataset.DataDir, c.Dataset.RawFile)
}

// DerivedPath is where the cleaned projection is written.
func (c *Config) DerivedPath() string {
	return filepath.Join(c.Dataset.DataDir, c.Dataset.DerivedFile)
}

// WorkbookPath is where the chart workbook is written.
func (c *Config) WorkbookPath() string {
	return filepath.Join(c.Dataset.DataDir, c.Dataset.WorkbookFile)
}

// Options converts the analysis settings for the report use case.
func (c *Config) Options() analysis.Options {
	return analysis.Options{
		LowVolumeRatio: c.Analysis.LowVolumeRatio,
		PeakSigma:      c.Analysis.PeakSigma,
		RollingWindow:  c.Analysis.RollingWindow,
	}
}

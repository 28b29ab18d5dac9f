// Package config provides unified configuration loading for the flipbook service.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the flipbook service.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Storage       StorageConfig       `yaml:"storage"`
	Raster        RasterConfig        `yaml:"raster"`
	OCR           OCRConfig           `yaml:"ocr"`
	Viewer        ViewerConfig        `yaml:"viewer"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
	MaxUploadBytes   int64         `yaml:"max_upload_bytes"`
}

// DatabaseConfig holds conversion-log database settings.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"` // sqlite or postgres
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	Path         string `yaml:"path"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// PostgresConfig holds Postgres-specific settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// StorageConfig holds object storage settings for published flipbooks.
type StorageConfig struct {
	S3 S3Config `yaml:"s3"`
}

// S3Config holds S3-specific settings.
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
	// BaseURL overrides the default https://{bucket}.s3.{region}.amazonaws.com
	// public URL, for CDN or S3-compatible endpoints.
	BaseURL string `yaml:"base_url"`
}

// RasterConfig holds page rendering settings.
type RasterConfig struct {
	DPI          float64 `yaml:"dpi"`
	Quality      int     `yaml:"quality"`
	ThumbQuality int     `yaml:"thumb_quality"`
	ThumbMaxW    int     `yaml:"thumb_max_width"`
	ThumbMaxH    int     `yaml:"thumb_max_height"`
}

// OCRConfig holds text extraction settings.
type OCRConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Language string `yaml:"language"`
	Binary   string `yaml:"binary"`
	MaxWidth int    `yaml:"max_width"`
}

// ViewerConfig selects which features the generated viewer carries.
type ViewerConfig struct {
	Search         bool `yaml:"search"`
	ZoomPanel      bool `yaml:"zoom_panel"`
	SidebarMenu    bool `yaml:"sidebar_menu"`
	DownloadButton bool `yaml:"download_button"`
	AISummaryStub  bool `yaml:"ai_summary_stub"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	ServiceName string `yaml:"service_name"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			ReadTimeout:      120 * time.Second,
			WriteTimeout:     120 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
			MaxUploadBytes:   100 << 20, // 100MB
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{
				Path:         "/tmp/flipbook.db",
				MaxOpenConns: 1,
			},
			Postgres: PostgresConfig{
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 5 * time.Minute,
			},
		},
		Storage: StorageConfig{
			S3: S3Config{
				Region: "us-east-1",
			},
		},
		Raster: RasterConfig{
			DPI:          150,
			Quality:      85,
			ThumbQuality: 75,
			ThumbMaxW:    200,
			ThumbMaxH:    300,
		},
		OCR: OCRConfig{
			Enabled:  false,
			Language: "ces",
			Binary:   "tesseract",
			MaxWidth: 2000,
		},
		Viewer: ViewerConfig{
			Search:         true,
			ZoomPanel:      true,
			SidebarMenu:    false,
			DownloadButton: true,
			AISummaryStub:  false,
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			LogFormat:   "json",
			ServiceName: "flipbook",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("invalid database driver: %s", c.Database.Driver)
	}

	if c.Raster.DPI < 36 || c.Raster.DPI > 600 {
		return fmt.Errorf("raster dpi must be between 36 and 600, got %g", c.Raster.DPI)
	}

	if c.Raster.Quality < 1 || c.Raster.Quality > 100 {
		return fmt.Errorf("raster quality must be between 1 and 100, got %d", c.Raster.Quality)
	}

	if c.Raster.ThumbQuality < 1 || c.Raster.ThumbQuality > 100 {
		return fmt.Errorf("thumb quality must be between 1 and 100, got %d", c.Raster.ThumbQuality)
	}

	if c.OCR.MaxWidth < 100 {
		return fmt.Errorf("ocr max_width must be at least 100, got %d", c.OCR.MaxWidth)
	}

	return nil
}

// IsDevelopment returns true if running in development mode. Development
// front doors include stack-trace detail in error payloads.
func (c *Config) IsDevelopment() bool {
	return c.Database.Driver == "sqlite"
}

// DatabaseDSN returns the appropriate database connection string.
func (c *Config) DatabaseDSN() string {
	if c.Database.Driver == "sqlite" {
		return c.Database.SQLite.Path
	}
	return c.Database.Postgres.DSN
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		if strings.HasPrefix(v, "sqlite:") {
			cfg.Database.Driver = "sqlite"
			cfg.Database.SQLite.Path = strings.TrimPrefix(v, "sqlite:")
		} else if strings.HasPrefix(v, "postgres") {
			cfg.Database.Driver = "postgres"
			cfg.Database.Postgres.DSN = v
		}
	}

	if v := os.Getenv("AWS_S3_BUCKET"); v != "" {
		cfg.Storage.S3.Bucket = v
	}

	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.Storage.S3.Region = v
	}

	if v := os.Getenv("S3_BASE_URL"); v != "" {
		cfg.Storage.S3.BaseURL = v
	}

	if v := os.Getenv("OCR_ENABLED"); v == "true" {
		cfg.OCR.Enabled = true
	}

	if v := os.Getenv("OCR_LANGUAGE"); v != "" {
		cfg.OCR.Language = v
	}

	if v := os.Getenv("TESSERACT_BINARY"); v != "" {
		cfg.OCR.Binary = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}

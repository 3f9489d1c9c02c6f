package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"tool-rental-backend/internal/pricing"
)

// Catalog sources
const (
	CatalogSourceDefault  = "default"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// CatalogConfig selects where the tool catalog is loaded from at startup
type CatalogConfig struct {
	Source string `yaml:"source"` // "default", "file" or "postgres"
	File   string `yaml:"file"`   // YAML catalog, for source "file"
}

// PricingConfig contains charge calculation settings
type PricingConfig struct {
	ChargeWindow string `yaml:"charge_window"` // "inclusive" or "after_checkout"
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Default returns a configuration that serves the built-in catalog on
// port 8080.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. An empty path skips the file and
// starts from defaults; environment overrides apply in both cases.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with environment variables if present
	if err := cfg.overrideWithEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() error {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", val, err)
		}
		c.Server.Port = port
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", val, err)
		}
		c.Database.Port = port
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Catalog
	if val := os.Getenv("CATALOG_SOURCE"); val != "" {
		c.Catalog.Source = val
	}
	if val := os.Getenv("CATALOG_FILE"); val != "" {
		c.Catalog.File = val
	}

	// Pricing
	if val := os.Getenv("CHARGE_WINDOW"); val != "" {
		c.Pricing.ChargeWindow = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceDefault
	}
	if c.Pricing.ChargeWindow == "" {
		c.Pricing.ChargeWindow = string(pricing.ChargeWindowInclusive)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Catalog.Source {
	case CatalogSourceDefault:
	case CatalogSourceFile:
		if c.Catalog.File == "" {
			return fmt.Errorf("catalog file is required for catalog source %q", CatalogSourceFile)
		}
	case CatalogSourcePostgres:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown catalog source: %q", c.Catalog.Source)
	}

	if _, err := pricing.ParseChargeWindow(c.Pricing.ChargeWindow); err != nil {
		return err
	}

	return nil
}

// Validate checks the settings needed to open a database connection
func (d DatabaseConfig) Validate() error {
	if d.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if d.User == "" {
		return fmt.Errorf("database user is required")
	}
	if d.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if d.Port <= 0 || d.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", d.Port)
	}
	return nil
}

// ChargeWindow returns the parsed pricing window. Validate has already
// rejected unknown values.
func (c *Config) ChargeWindow() pricing.ChargeWindow {
	w, _ := pricing.ParseChargeWindow(c.Pricing.ChargeWindow)
	return w
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

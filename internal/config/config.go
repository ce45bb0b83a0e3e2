package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Sources SourcesConfig `yaml:"sources" envconfig:"SOURCES"`
	HTTP    HTTPConfig    `yaml:"http" envconfig:"HTTP"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/tidyprep.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"."`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// SourcesConfig contains the upstream dataset locations
type SourcesConfig struct {
	BillboardURL      string `yaml:"billboard_url" envconfig:"BILLBOARD_URL" default:"https://raw.githubusercontent.com/hadley/tidy-data/master/data/billboard.csv"`
	PostalCountry     string `yaml:"postal_country" envconfig:"POSTAL_COUNTRY" default:"PL"`
	PostalURLTemplate string `yaml:"postal_url_template" envconfig:"POSTAL_URL_TEMPLATE" default:"https://download.geonames.org/export/zip/%s.zip"`
}

// HTTPConfig contains settings for the download client
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"60s"`
	UserAgent string        `yaml:"user_agent" envconfig:"USER_AGENT" default:"tidyprep/1.0"`
}

const configFileName = "tidyprep.yaml"

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("TIDYPREP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	if _, err := os.Stat(configFileName); err == nil {
		fileConfig, err := loadFromFile(configFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config. Env takes precedence, so
// only fields still at their zero value fall back to the file.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.OutputDir == "" {
		envConfig.Paths.OutputDir = fileConfig.Paths.OutputDir
	}
	if envConfig.Paths.LogsDir == "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if envConfig.Sources.BillboardURL == "" {
		envConfig.Sources.BillboardURL = fileConfig.Sources.BillboardURL
	}
	if envConfig.Sources.PostalCountry == "" {
		envConfig.Sources.PostalCountry = fileConfig.Sources.PostalCountry
	}
	if envConfig.Sources.PostalURLTemplate == "" {
		envConfig.Sources.PostalURLTemplate = fileConfig.Sources.PostalURLTemplate
	}
	if envConfig.HTTP.Timeout == 0 {
		envConfig.HTTP.Timeout = fileConfig.HTTP.Timeout
	}
	if envConfig.HTTP.UserAgent == "" {
		envConfig.HTTP.UserAgent = fileConfig.HTTP.UserAgent
	}

	return envConfig
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Sources.BillboardURL == "" {
		return fmt.Errorf("billboard source URL must not be empty")
	}
	if len(c.Sources.PostalCountry) != 2 {
		return fmt.Errorf("postal country must be a two-letter code, got %q", c.Sources.PostalCountry)
	}
	if !strings.Contains(c.Sources.PostalURLTemplate, "%s") {
		return fmt.Errorf("postal URL template must contain a %%s placeholder")
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTP.Timeout)
	}

	return nil
}

// PostalURL returns the download URL for the configured country
func (c *Config) PostalURL() string {
	return fmt.Sprintf(c.Sources.PostalURLTemplate, strings.ToUpper(c.Sources.PostalCountry))
}

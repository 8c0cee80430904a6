// Package config loads settings for programs embedding the library and
// builds the pieces the client constructors want: dropbox options and a
// zerolog logger. It is entirely optional; the library itself takes all
// settings through constructor arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// Load loads the configuration from file. With an empty path, standard
// locations are searched (working directory, ~/.dropboxkit, /etc/dropboxkit).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".dropboxkit"))
		}
		v.AddConfigPath("/etc/dropboxkit/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dropbox.timeout_seconds", 30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Dropbox.Token == "" || cfg.Dropbox.Token == "your-access-token-here" {
		return fmt.Errorf("dropbox.token must be set to a valid access token")
	}

	if cfg.Dropbox.TimeoutSeconds <= 0 {
		return fmt.Errorf("dropbox.timeout_seconds must be positive")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ClientOptions translates the dropbox section into core client options.
func (c *Config) ClientOptions() []dropbox.Option {
	opts := []dropbox.Option{
		dropbox.WithTimeout(time.Duration(c.Dropbox.TimeoutSeconds) * time.Second),
	}
	if c.Dropbox.UserAgent != "" {
		opts = append(opts, dropbox.WithUserAgent(c.Dropbox.UserAgent))
	}
	return opts
}

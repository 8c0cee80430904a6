package config

// Config represents the complete configuration structure for programs
// embedding the library. The client packages themselves never read config
// files or the environment; everything here feeds constructor arguments.
type Config struct {
	Dropbox DropboxConfig `mapstructure:"dropbox"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DropboxConfig holds the access token and HTTP settings.
type DropboxConfig struct {
	Token          string `mapstructure:"token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

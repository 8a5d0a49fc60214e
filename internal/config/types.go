package config

import "time"

// Config is the root configuration for PhoneScout.
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	User    UserConfig    `yaml:"user,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig locates the backend that hosts the assistant,
// registration, contact, and catalog endpoints.
type ServerConfig struct {
	BaseURL        string `yaml:"baseUrl,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}

// Timeout returns the request timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// UserConfig pre-fills the registration form. The server still assigns
// the user ID at session start; nothing here persists a session.
type UserConfig struct {
	Name        string `yaml:"name,omitempty"`
	Language    string `yaml:"language,omitempty"`
	Preferences string `yaml:"preferences,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	File  string `yaml:"file,omitempty"`  // rotated JSON log file; empty disables file output
}

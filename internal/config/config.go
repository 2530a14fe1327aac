// Package config loads the process configuration for the lifemcp server
// binaries from the environment. A local .env file is honored because each
// binary imports godotenv's autoload package before config is read.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the settings shared by the server binaries.
type Config struct {
	// Port is the TCP port for the streamable HTTP transport (PORT).
	Port int `mapstructure:"port"`

	// LogLevel selects the slog level: debug, info, warn, error (LOG_LEVEL).
	LogLevel string `mapstructure:"log_level"`

	// CongestionBaseURL overrides the congestion client's upstream base URL
	// (CONGESTION_BASE_URL). Empty keeps the client's built-in default.
	CongestionBaseURL string `mapstructure:"congestion_base_url"`

	// CongestionDefaultPlace overrides the place used when a lookup omits
	// the name (CONGESTION_DEFAULT_PLACE). Empty keeps the client's built-in
	// default.
	CongestionDefaultPlace string `mapstructure:"congestion_default_place"`
}

// envBindings maps config keys to the environment variables that feed them.
var envBindings = map[string]string{
	"port":                     "PORT",
	"log_level":                "LOG_LEVEL",
	"congestion_base_url":      "CONGESTION_BASE_URL",
	"congestion_default_place": "CONGESTION_DEFAULT_PLACE",
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("congestion_base_url", "")
	v.SetDefault("congestion_default_place", "")

	for key, envVar := range envBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("binding %s: %w", envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

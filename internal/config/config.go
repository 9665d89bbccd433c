// Package config reads the process environment for pizza-cli.
//
// Values come from PIZZA_* environment variables, optionally seeded from a
// .env file in the working directory. Calculator defaults are not part of
// this package; they live in the settings file managed by the settings
// service.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "PIZZA"

// Log formats accepted in PIZZA_LOG_FORMAT.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ErrInvalidLogFormat is returned for an unknown PIZZA_LOG_FORMAT value.
var ErrInvalidLogFormat = errors.New("invalid log format")

// Config holds the environment configuration.
type Config struct {
	// Home is the directory holding config.toml and the profile database.
	Home string

	// Verbose enables debug logging without the --verbose flag.
	Verbose bool

	// LogFormat is "console" or "json".
	LogFormat string
}

// ConfigDir returns the directory of the settings file.
func (c *Config) ConfigDir() string {
	return c.Home
}

// DataDir returns the directory of the profile database.
func (c *Config) DataDir() string {
	return filepath.Join(c.Home, "data")
}

// JSONLogs reports whether logs should be written as JSON.
func (c *Config) JSONLogs() bool {
	return c.LogFormat == LogFormatJSON
}

// LoadDotEnv loads .env from the working directory if present. Variables
// already set in the environment win.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	home, err := defaultHome()
	if err != nil {
		return nil, err
	}
	v.SetDefault("home", home)
	v.SetDefault("verbose", false)
	v.SetDefault("log_format", LogFormatConsole)

	cfg := &Config{
		Home:      expandHome(v.GetString("home")),
		Verbose:   v.GetBool("verbose"),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w %q: want %s or %s", ErrInvalidLogFormat, c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	if strings.TrimSpace(c.Home) == "" {
		return errors.New("home directory must not be empty")
	}
	return nil
}

func defaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pizza"), nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

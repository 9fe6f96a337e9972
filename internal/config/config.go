// Package config loads the ambient settings shared by the command line tools.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel = "DATAWORLD_LOG_LEVEL"
	EnvJSONLog  = "DATAWORLD_JSON_LOG"
)

// Config holds settings that flags may override.
type Config struct {
	// LogLevel is the hclog level name; empty means the logger default.
	LogLevel string
	// JSONLog switches log output to JSON lines.
	JSONLog bool
}

// Load reads an optional .env file from the working directory and then the
// process environment. A missing .env is not an error; values already set in
// the environment win over the file.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path.
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		LogLevel: strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
		JSONLog:  os.Getenv(EnvJSONLog) == "1",
	}, nil
}

// WithLogLevel returns a copy of c with LogLevel replaced when level is set.
func (c Config) WithLogLevel(level string) Config {
	if level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	return c
}

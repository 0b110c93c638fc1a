package investrak

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration shared by the CLI and the web
// front end.
type Config struct {
	StoragePath string    `toml:"storage_path"`
	Currency    string    `toml:"currency"`
	Web         WebConfig `toml:"web"`
}

// WebConfig holds the web front end listen address.
type WebConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the host:port the web front end listens on.
func (w WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// DefaultConfig returns the built-in defaults: data under ~/.investrak,
// USD reporting, web front end on localhost.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		StoragePath: filepath.Join(home, ".investrak"),
		Currency:    "USD",
		Web:         WebConfig{Host: "127.0.0.1", Port: 8087},
	}
}

// LoadConfig builds the effective configuration: defaults, then the optional
// TOML file at path, then INVESTRAK_* environment overrides. A .env file in
// the working directory is honored before the environment is read. A missing
// config file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults apply
	case err != nil:
		return Config{}, fmt.Errorf("cannot read config file %q: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("cannot parse config file %q: %w", path, err)
		}
	}

	if v := os.Getenv("INVESTRAK_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("INVESTRAK_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("INVESTRAK_WEB_HOST"); v != "" {
		cfg.Web.Host = v
	}
	if v := os.Getenv("INVESTRAK_WEB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INVESTRAK_WEB_PORT %q: %w", v, err)
		}
		cfg.Web.Port = port
	}
	return cfg, nil
}

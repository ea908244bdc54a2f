package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server runtime settings, sourced from an optional .env
// file and the PROJECTEVAL_* environment variables. Flags may override the
// result afterwards.
type Config struct {
	Host     string
	Port     int
	DataDir  string
	DBName   string
	LogDir   string
	LogLevel string
}

const (
	envHost     = "PROJECTEVAL_HOST"
	envPort     = "PROJECTEVAL_PORT"
	envDataDir  = "PROJECTEVAL_DATA_DIR"
	envDBName   = "PROJECTEVAL_DB_NAME"
	envLogDir   = "PROJECTEVAL_LOG_DIR"
	envLogLevel = "PROJECTEVAL_LOG_LEVEL"
)

// Load reads the optional .env file, then the environment. A missing .env is
// not an error; malformed numeric values are.
func Load() (Config, error) {
	// Values already present in the environment win over the file.
	_ = godotenv.Load()

	cfg := Config{
		Host:     getEnv(envHost, "127.0.0.1"),
		Port:     8000,
		DataDir:  getEnv(envDataDir, defaultDataDir()),
		DBName:   getEnv(envDBName, "projects.db"),
		LogDir:   getEnv(envLogDir, ""),
		LogLevel: getEnv(envLogLevel, "info"),
	}
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataDir, "logs")
	}

	if raw := strings.TrimSpace(os.Getenv(envPort)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid %s %q", envPort, raw)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBPath returns the full database file path.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func defaultDataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		if cwd, err := os.Getwd(); err == nil {
			return filepath.Join(cwd, "data")
		}
		return "data"
	}
	return filepath.Join(configDir, "projecteval")
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config is the runtime configuration of decklens.
type Config struct {
	APIBaseURL  string
	LogLevel    string
	LogFile     string
	SessionFile string
	ChartDir    string
}

const (
	defaultConfigPath  = "~/.config/decklens/config.toml"
	defaultAPIBaseURL  = "http://localhost:5000/api"
	defaultLogLevel    = "info"
	defaultLogFile     = "~/.local/state/decklens/decklens.log"
	defaultSessionFile = "~/.config/decklens/session.toml"
	defaultChartDir    = "~/.local/share/decklens/charts"
)

// Environment variables that override the config file.
const (
	EnvAPIBaseURL = "DECKLENS_API_BASE_URL"
	EnvLogLevel   = "DECKLENS_LOG_LEVEL"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load builds the config from defaults, the TOML file at path, and the
// environment, in increasing precedence. A .env file in the working
// directory is loaded into the environment first. A missing config file is
// not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBaseURL:  defaultAPIBaseURL,
		LogLevel:    defaultLogLevel,
		LogFile:     defaultLogFile,
		SessionFile: defaultSessionFile,
		ChartDir:    defaultChartDir,
	}

	if err := cfg.readFile(resolved); err != nil {
		return Config{}, err
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	cfg.LogFile = mustExpand(cfg.LogFile)
	cfg.SessionFile = mustExpand(cfg.SessionFile)
	cfg.ChartDir = mustExpand(cfg.ChartDir)
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL  string `toml:"api_base_url"`
		LogLevel    string `toml:"log_level"`
		LogFile     string `toml:"log_file"`
		SessionFile string `toml:"session_file"`
		ChartDir    string `toml:"chart_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&c.APIBaseURL, raw.APIBaseURL)
	set(&c.LogLevel, raw.LogLevel)
	set(&c.LogFile, raw.LogFile)
	set(&c.SessionFile, raw.SessionFile)
	set(&c.ChartDir, raw.ChartDir)
	return nil
}

// Level returns the parsed log level, or info when it does not parse.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

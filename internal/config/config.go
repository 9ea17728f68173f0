package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings roster reads at startup.
type Config struct {
	APIURL         string
	PageSize       int
	RequestTimeout time.Duration
	ReloadInterval time.Duration
	LogDir         string
}

const (
	defaultConfigPath     = "~/.config/roster/config.toml"
	defaultLogDir         = "~/.local/share/roster/logs"
	defaultAPIURL         = "http://dummy.restapiexample.com/api/v1/"
	defaultPageSize       = 10
	defaultRequestTimeout = 5 * time.Second
)

// fileConfig mirrors config.toml. Durations are Go duration strings.
type fileConfig struct {
	APIURL         string `toml:"api_url"`
	PageSize       int    `toml:"page_size"`
	RequestTimeout string `toml:"request_timeout"`
	ReloadInterval string `toml:"reload_interval"`
	LogDir         string `toml:"log_dir"`
}

// envConfig holds the environment overrides. Unset variables leave the file
// values alone.
type envConfig struct {
	APIURL         string         `env:"ROSTER_API_URL"`
	PageSize       int            `env:"ROSTER_PAGE_SIZE"`
	RequestTimeout *time.Duration `env:"ROSTER_REQUEST_TIMEOUT"`
	ReloadInterval *time.Duration `env:"ROSTER_RELOAD_INTERVAL"`
	LogDir         string         `env:"ROSTER_LOG_DIR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		PageSize:       defaultPageSize,
		RequestTimeout: defaultRequestTimeout,
		LogDir:         mustExpand(defaultLogDir),
	}
}

// Load reads the config file at path (or the default location), then applies
// ROSTER_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.LogDir = mustExpand(cfg.LogDir)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("api_url is empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.ReloadInterval < 0 {
		return fmt.Errorf("reload_interval must not be negative, got %s", c.ReloadInterval)
	}
	return nil
}

// InfoLogPath returns the path of glog's INFO log symlink for roster.
func (c Config) InfoLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/roster.INFO")
	}
	return filepath.Join(c.LogDir, "roster.INFO")
}

func loadFile(path string, cfg *Config) error {
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

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.PageSize != 0 {
		cfg.PageSize = raw.PageSize
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.ReloadInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: reload_interval: %w", err)
		}
		cfg.ReloadInterval = d
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = v
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if v := strings.TrimSpace(overrides.APIURL); v != "" {
		cfg.APIURL = v
	}
	if overrides.PageSize != 0 {
		cfg.PageSize = overrides.PageSize
	}
	if overrides.RequestTimeout != nil {
		cfg.RequestTimeout = *overrides.RequestTimeout
	}
	if overrides.ReloadInterval != nil {
		cfg.ReloadInterval = *overrides.ReloadInterval
	}
	if v := strings.TrimSpace(overrides.LogDir); v != "" {
		cfg.LogDir = v
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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

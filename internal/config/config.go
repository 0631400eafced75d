package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ferdiebergado/usersvc/internal/pkg/env"
	timex "github.com/ferdiebergado/usersvc/internal/pkg/time"
)

type App struct {
	Env      string `json:"env,omitempty" env:"ENV"`
	LogLevel string `json:"log_level,omitempty" env:"LOG_LEVEL"`
}

type Server struct {
	Port            int            `json:"port,omitempty" env:"PORT"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" env:"MAX_BODY_BYTES"`
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
	)
}

var (
	errMissingSection  = errors.New("app and server sections are required")
	errInvalidPort     = errors.New("server port must be between 1 and 65535")
	errInvalidBodySize = errors.New("server max_body_bytes must be positive")
)

func (c *Config) validate() error {
	if c.App == nil || c.Server == nil {
		return errMissingSection
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: %d", errInvalidBodySize, c.Server.MaxBodyBytes)
	}
	return nil
}

// Load reads the JSON config file, applies environment overrides and
// validates the result.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := env.OverrideStruct(cfg); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	cfg := defaults()
	if err := json.Unmarshal(configFile, cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: &App{
			Env:      "development",
			LogLevel: "info",
		},
		Server: &Server{
			Port:            8888,
			ReadTimeout:     timex.Duration{Duration: 10 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 10 * time.Second},
			IdleTimeout:     timex.Duration{Duration: time.Minute},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
			MaxBodyBytes:    1 << 20,
		},
	}
}

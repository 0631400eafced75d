package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/usersvc/internal/config"
	envx "github.com/ferdiebergado/usersvc/internal/pkg/env"
	"github.com/ferdiebergado/usersvc/internal/pkg/logging"
)

const envProduction = "production"

type RunOptions struct {
	ConfigFile string
	EnvFile    string
}

// Run loads the environment and config, then serves until baseCtx is done or
// a termination signal arrives.
func Run(baseCtx context.Context, opts RunOptions) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if envx.Env("ENV", "development") != envProduction {
		if err := loadEnvFile(opts.EnvFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	api, err := New(cfg, NewProvider(), DefaultMiddlewares())
	if err != nil {
		return err
	}

	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		return nil
	}

	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Env file not found, using process environment.", "file", envFile)
		return nil
	}

	if err := env.Load(envFile); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

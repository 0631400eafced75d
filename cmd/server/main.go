package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ferdiebergado/usersvc/internal/app"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagEnvFile string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "Serve the users API",
	Long:          "Serves an in-memory CRUD API for users over HTTP until interrupted.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runServer,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "config.json", "path to the JSON config file")
	rootCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "env file loaded outside production")
}

func runServer(cmd *cobra.Command, _ []string) error {
	slog.Info("Starting server...")
	opts := app.RunOptions{
		ConfigFile: flagConfig,
		EnvFile:    flagEnvFile,
	}
	if err := app.Run(cmd.Context(), opts); err != nil {
		slog.Error("Application failed to start.", "reason", err)
		return err
	}
	slog.Info("Server shutdown gracefully.")
	return nil
}

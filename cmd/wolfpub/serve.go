package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wolfpub/wolfpub/internal/api"
	"github.com/wolfpub/wolfpub/internal/config"
	"github.com/wolfpub/wolfpub/pkg/engine"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WolfPub HTTP API",
	Long: `Start the back-office HTTP API.

Configuration is read from .wolfpub.yml in the working directory.
A DATABASE_URL environment variable (also loaded from .env when
present) overrides the configured connection settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environment wins either way.
		_ = godotenv.Load()

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		log := newLogger(cfg)

		connector := engine.NewConnector(cfg.Connector())
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := connector.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer connector.Close()
		printSuccess("Connected to %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

		store := engine.NewStore(connector, log)
		server := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: api.NewServer(store, log).Handler(),
		}

		shutdownCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			printInfo("Listening on %s", cfg.Server.Addr)
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-shutdownCtx.Done():
			printInfo("Shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}

		printSuccess("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

// loadConfigOrDefault falls back to the default configuration when no
// config file exists, so the server still starts against a local
// database or a DATABASE_URL.
func loadConfigOrDefault() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	loader := config.NewLoader(wd)
	cfg, err := loader.Load()
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			printWarning("No %s found, using defaults", config.FileName)
			cfg := config.Default()
			if err := cfg.ApplyEnv(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Log.Format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

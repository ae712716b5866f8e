package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wolfpub/wolfpub/internal/config"
	"github.com/wolfpub/wolfpub/pkg/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show WolfPub status",
	Long:  `Display configuration and database connectivity status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		fmt.Println("WolfPub Status")
		fmt.Println("────────────────────────────────────────────")
		fmt.Println()

		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		loader := config.NewLoader(wd)

		fmt.Println("Configuration:")
		if loader.Exists() {
			printSuccess("  %s found", config.FileName)
		} else {
			printWarning("  No %s, using defaults", config.FileName)
		}

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}
		fmt.Printf("  Database:        %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
		fmt.Printf("  Listen address:  %s\n", cfg.Server.Addr)
		fmt.Println()

		fmt.Println("Database:")
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		connector := engine.NewConnector(cfg.Connector())
		if err := connector.Connect(ctx); err != nil {
			printError("  Connection failed: %v", err)
			return nil
		}
		defer connector.Close()

		if err := connector.Ping(ctx); err != nil {
			printError("  Ping failed: %v", err)
			return nil
		}
		printSuccess("  Connection OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

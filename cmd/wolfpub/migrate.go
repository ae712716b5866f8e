package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wolfpub/wolfpub/pkg/catalog"
)

var (
	dryRun         bool
	applyMigration bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Generate or apply the database schema",
	Long: `Generate the WolfPub schema DDL or apply it to the database.

By default, displays the generated SQL without applying it.
Use --apply to execute the DDL against the database.

Examples:
  wolfpub migrate            # Show schema DDL
  wolfpub migrate --dry-run  # Same as above
  wolfpub migrate --apply    # Apply to database`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		printInfo("Generating schema DDL for %d tables...", len(catalog.All))
		ddl := catalog.DDL()

		if dryRun || !applyMigration {
			fmt.Println()
			fmt.Println("─────────────────────────────────────────────────")
			fmt.Println(ddl)
			fmt.Println("─────────────────────────────────────────────────")
			fmt.Println()
			printInfo("Dry run mode. Use --apply to execute the DDL.")
			return nil
		}

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		printInfo("Connecting to database...")
		conn, err := pgx.Connect(ctx, cfg.Connector().ConnectionString())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close(ctx)
		printSuccess("Connected to database")

		printInfo("Applying schema...")
		if _, err := conn.Exec(ctx, ddl); err != nil {
			printError("Migration failed")
			return fmt.Errorf("failed to execute DDL: %w", err)
		}

		printSuccess("Schema applied successfully")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show schema DDL without applying")
	migrateCmd.Flags().BoolVar(&applyMigration, "apply", false, "apply schema to database")
	rootCmd.AddCommand(migrateCmd)
}

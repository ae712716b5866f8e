package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wolfpub/wolfpub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a WolfPub project",
	Long: `Create a default configuration file in the current directory.

This will create:
  .wolfpub.yml    Configuration file with database defaults`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		loader := config.NewLoader(wd)

		if loader.Exists() {
			return fmt.Errorf("%s already exists", config.FileName)
		}

		if err := loader.Write(config.Default()); err != nil {
			return fmt.Errorf("failed to create %s: %w", config.FileName, err)
		}
		printSuccess("Created %s", config.FileName)

		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Printf("  Edit %s with your database settings\n", config.FileName)
		fmt.Println("  wolfpub migrate --apply")
		fmt.Println("  wolfpub serve")
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

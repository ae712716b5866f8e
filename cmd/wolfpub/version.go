package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show WolfPub version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("WolfPub v%s\n", version)
		if verbose {
			fmt.Printf("  Go: %s\n", runtime.Version())
			fmt.Printf("  OS: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

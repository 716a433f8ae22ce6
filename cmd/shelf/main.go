// Package main provides the shelf CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// jsonOutput controls whether to emit machine-readable JSON
var jsonOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Personal document library manager",
	Long: `shelf manages a personal library of books, slides, and class notes.

Metadata lives in flat JSON files under a .shelf directory, one array per
document kind plus a config.json. The files are plain text and versionable;
the CLI is just a front end over them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// .env may carry SHELF_ROOT for scripted use
	godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of human-readable")
	rootCmd.Version = Version
}

// getStartDir returns the directory repository discovery starts from.
func getStartDir() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}

	if root := os.Getenv("SHELF_ROOT"); root != "" {
		cwd = root
	}

	return cwd, 0
}

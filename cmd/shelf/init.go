package main

import (
	"fmt"
	"os"

	"github.com/matsen/shelf/internal/config"
	"github.com/spf13/cobra"
)

var initLibraryPath string

func init() {
	initCmd.Flags().StringVar(&initLibraryPath, "library", "", "Path to the directory holding the document files (default: the repository directory)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new shelf repository",
	Long: `Initialize a new shelf repository in the current directory.

Creates:
  .shelf/
  ├── config.json      # libraryPath and pdfReader
  ├── books.json       # []
  ├── slides.json      # []
  └── classnotes.json  # []`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a shelf repository")
	}

	if err := os.MkdirAll(config.ShelfPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .shelf directory: %v", err)
	}

	libraryPath := initLibraryPath
	if libraryPath == "" {
		libraryPath = root
	} else {
		libraryPath = config.ExpandPath(libraryPath)
		if err := config.ValidateLibraryPath(libraryPath); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
	}

	if err := config.WriteDefault(root, libraryPath); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	for _, path := range []string{config.BooksPath(root), config.SlidesPath(root), config.ClassNotesPath(root)} {
		if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
			exitWithError(ExitError, "creating collection file: %v", err)
		}
	}

	if jsonOutput {
		outputJSON(StatusResponse{Status: "initialized", Path: root})
	} else {
		fmt.Printf("Initialized shelf repository in %s\n", root)
	}

	return nil
}

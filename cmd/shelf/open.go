package main

import (
	"fmt"

	"github.com/matsen/shelf/internal/config"
	"github.com/matsen/shelf/internal/pdf"
	"github.com/matsen/shelf/internal/storage"
	"github.com/spf13/cobra"
)

var openKind string

func init() {
	openCmd.Flags().StringVar(&openKind, "kind", "", "Document kind (book, slide, classnote)")
	openCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <title>",
	Short: "Open a document in the configured reader",
	Long: `Open the document for the first entry matching a title.

The stored path is resolved against the configured library path. The reader
comes from config.json, falling back to the global config and then the
platform default.

Example:
  shelf open "SICP" --kind book`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

// OpenResult is the response for the open command.
type OpenResult struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

func runOpen(cmd *cobra.Command, args []string) error {
	kind := requireKind(openKind)
	store := openStore()

	rec, found, err := store.FindByTitle(store.CollectionPath(kind), args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if !found {
		exitWithError(ExitDataError, "no entry found with title %q", args[0])
	}

	docPath := recordString(rec, "path")
	if docPath == "" {
		exitWithError(ExitDataError, "no path stored for %q", args[0])
	}

	libraryPath, _, err := store.LibraryPath()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	reader, _, err := storage.ReadField(store.ConfigPath(), config.KeyPDFReader)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if reader == "" {
		reader = config.GetGlobalPDFReader()
	}

	opener := pdf.NewOpener(libraryPath, reader)
	fullPath, err := opener.ResolvePath(docPath)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if err := opener.Open(fullPath); err != nil {
		exitWithError(ExitError, "opening document: %v", err)
	}

	if jsonOutput {
		outputJSON(OpenResult{Status: "opened", Path: fullPath})
	} else {
		fmt.Printf("Opening: %s\n", docPath)
	}

	return nil
}

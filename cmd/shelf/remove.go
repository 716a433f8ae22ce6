package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	removeKind string
	removeInfo string
)

func init() {
	removeCmd.Flags().StringVar(&removeKind, "kind", "", "Document kind (book, slide, classnote)")
	removeCmd.Flags().StringVar(&removeInfo, "info", "path", "Field to report from the removed entry")
	removeCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <title>",
	Short: "Remove all entries with a title from a collection",
	Long: `Remove every entry matching the title from the collection for a kind.

Prints the requested field from the removed entry, the file path by default.

Examples:
  shelf remove "SICP" --kind book
  shelf remove "Week 3" --kind slide --info lectureName`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

// RemoveResult is the response for the remove command.
type RemoveResult struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Info   string `json:"info,omitempty"`
}

func runRemove(cmd *cobra.Command, args []string) error {
	kind := requireKind(removeKind)
	store := openStore()

	title := args[0]
	info, found, err := store.RemoveEntry(store.CollectionPath(kind), title, removeInfo)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if !found {
		// The store already reported the miss
		os.Exit(ExitDataError)
	}

	if jsonOutput {
		outputJSON(RemoveResult{Status: "removed", Title: title, Info: info})
	} else {
		fmt.Printf("Removed %q", title)
		if info != "" {
			fmt.Printf(" (%s: %s)", removeInfo, info)
		}
		fmt.Println()
	}

	return nil
}

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var getKind string

func init() {
	getCmd.Flags().StringVar(&getKind, "kind", "", "Document kind (book, slide, classnote)")
	getCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <title>",
	Short: "Show the first entry matching a title",
	Long: `Show the first entry matching a title in the collection for a kind.

Example:
  shelf get "SICP" --kind book`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	kind := requireKind(getKind)
	store := openStore()

	rec, found, err := store.FindByTitle(store.CollectionPath(kind), args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if !found {
		exitWithError(ExitDataError, "no entry found with title %q", args[0])
	}

	if jsonOutput {
		return outputJSON(rec)
	}

	fmt.Println(truncateString(recordString(rec, "title"), DetailTitleMaxLen))
	if authors := recordAuthors(rec); len(authors) > 0 {
		fmt.Printf("  authors: %s\n", formatAuthors(authors, 10))
	}

	// Remaining fields in stable order
	keys := make([]string, 0, len(rec))
	for k := range rec {
		if k == "title" || k == "authors" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, rec[k])
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/matsen/shelf/internal/document"
	"github.com/matsen/shelf/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listKind  string
	listLimit int
)

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "Only list one kind (book, slide, classnote)")
	listCmd.Flags().IntVar(&listLimit, "limit", DefaultListLimit, "Maximum entries per kind")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List library entries",
	Long: `List library entries, all kinds or one.

Examples:
  shelf list
  shelf list --kind book --limit 10`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// ListEntry is one entry in list command JSON output.
type ListEntry struct {
	Kind   string         `json:"kind"`
	Record map[string]any `json:"record"`
}

func runList(cmd *cobra.Command, args []string) error {
	store := openStore()

	kinds := []document.Kind{document.KindBook, document.KindSlide, document.KindClassNote}
	if listKind != "" {
		kinds = []document.Kind{requireKind(listKind)}
	}

	var entries []ListEntry
	for _, kind := range kinds {
		records, err := storage.ReadCollection(store.CollectionPath(kind))
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}

		for i, rec := range records {
			if listLimit > 0 && i >= listLimit {
				break
			}
			entries = append(entries, ListEntry{Kind: string(kind), Record: rec})
		}
	}

	if jsonOutput {
		if entries == nil {
			entries = []ListEntry{}
		}
		return outputJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("Library is empty")
		return nil
	}

	for i, e := range entries {
		title := recordString(e.Record, "title")
		fmt.Printf("%d. [%s] %s\n", i+1, e.Kind, truncateString(title, ListTitleMaxLen))
		if authors := recordAuthors(e.Record); len(authors) > 0 {
			fmt.Printf("   %s\n", formatAuthors(authors, 3))
		}
		if path := recordString(e.Record, "path"); path != "" {
			fmt.Printf("   %s\n", path)
		}
	}

	return nil
}

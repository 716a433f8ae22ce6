package main

import (
	"os"

	"github.com/spf13/cobra"
)

var editKind string

func init() {
	editCmd.Flags().StringVar(&editKind, "kind", "", "Document kind (book, slide, classnote)")
	editCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <title>",
	Short: "Interactively edit one field of an entry",
	Long: `Interactively edit one field of the first entry matching the title.

The title itself cannot be edited; remove and re-add instead.

Example:
  shelf edit "SICP" --kind book`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	kind := requireKind(editKind)
	store := openStore()

	ok, err := store.EditFieldByTitle(store.CollectionPath(kind), args[0], os.Stdin, os.Stdout)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if !ok {
		os.Exit(ExitDataError)
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/matsen/shelf/internal/document"
	"github.com/matsen/shelf/internal/pdf"
	"github.com/matsen/shelf/internal/storage"
	"github.com/spf13/cobra"
)

var (
	addTitle       string
	addPath        string
	addAuthors     []string
	addSubTitle    string
	addField       string
	addYear        string
	addLecture     string
	addInstitution string
	addAutoTitle   bool
)

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Document title")
	addCmd.Flags().StringVar(&addPath, "path", "", "Path to the document file, relative to the library path")
	addCmd.Flags().StringArrayVar(&addAuthors, "author", nil, "Author name (repeatable)")
	addCmd.Flags().StringVar(&addSubTitle, "subtitle", "", "Subtitle (book, classnote)")
	addCmd.Flags().StringVar(&addField, "field", "", "Field of knowledge (book)")
	addCmd.Flags().StringVar(&addYear, "year", "", "Publish year (book)")
	addCmd.Flags().StringVar(&addLecture, "lecture", "", "Lecture name (slide, classnote)")
	addCmd.Flags().StringVar(&addInstitution, "institution", "", "Institution name (slide, classnote)")
	addCmd.Flags().BoolVar(&addAutoTitle, "auto-title", false, "Extract a missing title from the PDF first page")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <book|slide|classnote>",
	Short: "Add a document record to a collection",
	Long: `Add a document record to the collection for its kind.

Examples:
  shelf add book --title "SICP" --path books/sicp.pdf --author Abelson --author Sussman --year 1985
  shelf add slide --title "Week 3" --path slides/la3.pdf --lecture "18.06" --institution MIT
  shelf add book --path books/new.pdf --auto-title`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	kind := requireKind(args[0])
	store := openStore()

	title := addTitle
	if title == "" && addAutoTitle {
		title = autoTitle(store, addPath)
	}
	if title == "" {
		exitWithError(ExitError, "a title is required (set --title or --auto-title)")
	}

	buf := document.Buffer{
		"type":  string(kind),
		"title": title,
		"path":  addPath,
	}
	if len(addAuthors) > 0 {
		buf["authors"] = addAuthors
	}
	if addSubTitle != "" {
		buf["subTitle"] = addSubTitle
	}
	if addField != "" {
		buf["fieldOfKnowledge"] = addField
	}
	if addYear != "" {
		buf["publishYear"] = addYear
	}
	if addLecture != "" {
		buf["lectureName"] = addLecture
	}
	if addInstitution != "" {
		buf["institutionName"] = addInstitution
	}

	ok, err := store.AddRecord(buf)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if !ok {
		// The store already reported why
		os.Exit(ExitDataError)
	}

	if jsonOutput {
		outputJSON(StatusResponse{Status: "added", Path: store.CollectionPath(kind)})
	} else {
		fmt.Printf("Added %q to %s\n", title, args[0])
	}

	return nil
}

// autoTitle extracts a title from the document's first page, best effort.
func autoTitle(store *storage.Store, docPath string) string {
	libraryPath, ok, err := store.LibraryPath()
	if err != nil || !ok {
		return ""
	}

	opener := pdf.NewOpener(libraryPath, "")
	fullPath, err := opener.ResolvePath(docPath)
	if err != nil {
		return ""
	}

	title, err := pdf.ExtractTitle(fullPath)
	if err != nil {
		return ""
	}
	return title
}

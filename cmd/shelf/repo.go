package main

import (
	"os"

	"github.com/matsen/shelf/internal/config"
	"github.com/matsen/shelf/internal/document"
	"github.com/matsen/shelf/internal/storage"
)

// openStore locates the enclosing repository and returns a store over it.
// Exits the process if no repository is found.
func openStore() *storage.Store {
	start, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(start)
	if err != nil {
		// Fall back to the global default root, if one is configured
		if root := config.GetDefaultRoot(); root != "" && config.IsRepository(root) {
			return storage.New(root, nil)
		}
		exitWithError(ExitConfigError, "%v", err)
	}

	return storage.New(repoRoot, nil)
}

// kindFromArg maps a CLI kind word to its record kind tag.
func kindFromArg(arg string) (document.Kind, bool) {
	switch arg {
	case "book", "books":
		return document.KindBook, true
	case "slide", "slides":
		return document.KindSlide, true
	case "classnote", "classnotes", "note", "notes":
		return document.KindClassNote, true
	default:
		return "", false
	}
}

// requireKind parses a --kind flag value or exits with a usage error.
func requireKind(arg string) document.Kind {
	kind, ok := kindFromArg(arg)
	if !ok {
		exitWithError(ExitError, "unknown kind %q (valid: book, slide, classnote)", arg)
	}
	return kind
}

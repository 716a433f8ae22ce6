// Package config handles repository layout and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ShelfDir is the hidden directory holding the database files.
	ShelfDir = ".shelf"

	ConfigFile     = "config.json"
	BooksFile      = "books.json"
	SlidesFile     = "slides.json"
	ClassNotesFile = "classnotes.json"
)

// Keys in config.json, a flat object of string values.
const (
	KeyLibraryPath = "libraryPath"
	KeyPDFReader   = "pdfReader"
)

// ValidReaders lists the supported PDF reader values.
var ValidReaders = []string{"system", "skim", "zathura", "evince", "okular"}

// ShelfPath returns the path to the .shelf directory from a root path.
func ShelfPath(root string) string {
	return filepath.Join(root, ShelfDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ShelfDir, ConfigFile)
}

// BooksPath returns the path to books.json from a root path.
func BooksPath(root string) string {
	return filepath.Join(root, ShelfDir, BooksFile)
}

// SlidesPath returns the path to slides.json from a root path.
func SlidesPath(root string) string {
	return filepath.Join(root, ShelfDir, SlidesFile)
}

// ClassNotesPath returns the path to classnotes.json from a root path.
func ClassNotesPath(root string) string {
	return filepath.Join(root, ShelfDir, ClassNotesFile)
}

// IsRepository checks if the given path contains a shelf repository.
func IsRepository(root string) bool {
	info, err := os.Stat(ShelfPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a shelf repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a shelf repository (no .shelf directory found)")
		}
		abs = parent
	}
}

// Default returns the initial config.json contents for a new repository.
// libraryPath points at the directory holding the actual document files.
func Default(libraryPath string) map[string]string {
	return map[string]string{
		KeyLibraryPath: libraryPath,
		KeyPDFReader:   "system",
	}
}

// WriteDefault writes the initial config.json for a repository at root.
func WriteDefault(root, libraryPath string) error {
	data, err := json.MarshalIndent(Default(libraryPath), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidateLibraryPath checks that the library path exists and is a directory.
func ValidateLibraryPath(path string) error {
	if path == "" {
		return nil // Empty is allowed (not yet configured)
	}

	expanded := ExpandPath(path)

	info, err := os.Stat(expanded)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", expanded)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", expanded)
	}

	return nil
}

// ValidatePDFReader checks that the reader value is valid.
func ValidatePDFReader(reader string) error {
	if reader == "" {
		return nil // Empty defaults to "system"
	}

	for _, valid := range ValidReaders {
		if reader == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid pdfReader: %s (valid: %v)", reader, ValidReaders)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

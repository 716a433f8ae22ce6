// Package pdf handles PDF title extraction, path resolution, and opening.
package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener resolves document paths against the library root and opens them
// with the configured reader.
type Opener struct {
	libraryRoot string
	reader      string
}

// NewOpener creates an opener for the given library root and reader name.
// An empty reader falls back to the platform default.
func NewOpener(libraryRoot, reader string) *Opener {
	if reader == "" {
		reader = "system"
	}
	return &Opener{
		libraryRoot: libraryRoot,
		reader:      reader,
	}
}

// ResolvePath resolves a stored document path to an absolute path.
// Relative paths are joined with the library root.
func (o *Opener) ResolvePath(storedPath string) (string, error) {
	if storedPath == "" {
		return "", fmt.Errorf("no document path specified")
	}

	fullPath := storedPath
	if !filepath.IsAbs(storedPath) {
		if o.libraryRoot == "" {
			return "", fmt.Errorf("library path not configured")
		}
		fullPath = filepath.Join(o.libraryRoot, storedPath)
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document not found: %s", fullPath)
		}
		return "", fmt.Errorf("checking document: %w", err)
	}

	return fullPath, nil
}

// Open opens a document using the configured reader.
// fullPath should be an absolute path to an existing file.
func (o *Opener) Open(fullPath string) error {
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document does not exist: %s", fullPath)
		}
		return fmt.Errorf("checking document: %w", err)
	}

	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = o.darwinCommand(fullPath)
	case "linux":
		cmd = o.linuxCommand(fullPath)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

func (o *Opener) darwinCommand(path string) *exec.Cmd {
	switch o.reader {
	case "skim":
		return exec.Command("open", "-a", "Skim", path)
	default: // "system"
		return exec.Command("open", path)
	}
}

func (o *Opener) linuxCommand(path string) *exec.Cmd {
	switch o.reader {
	case "zathura":
		return exec.Command("zathura", path)
	case "evince":
		return exec.Command("evince", path)
	case "okular":
		return exec.Command("okular", path)
	default: // "system"
		return exec.Command("xdg-open", path)
	}
}

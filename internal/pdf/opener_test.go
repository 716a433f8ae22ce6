package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	root := t.TempDir()
	rel := filepath.Join("books", "sicp.pdf")
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(full, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	o := NewOpener(root, "system")

	got, err := o.ResolvePath(rel)
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if got != full {
		t.Errorf("ResolvePath() = %q, want %q", got, full)
	}

	// Absolute paths bypass the library root
	got, err = o.ResolvePath(full)
	if err != nil {
		t.Fatalf("ResolvePath(abs) error = %v", err)
	}
	if got != full {
		t.Errorf("ResolvePath(abs) = %q, want %q", got, full)
	}
}

func TestResolvePath_Errors(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name       string
		opener     *Opener
		storedPath string
	}{
		{"empty path", NewOpener(root, "system"), ""},
		{"no library root", NewOpener("", "system"), "books/x.pdf"},
		{"missing file", NewOpener(root, "system"), "books/missing.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.opener.ResolvePath(tt.storedPath); err == nil {
				t.Error("ResolvePath() expected error, got nil")
			}
		})
	}
}

func TestNewOpener_DefaultReader(t *testing.T) {
	o := NewOpener("/lib", "")
	if o.reader != "system" {
		t.Errorf("reader = %q, want system", o.reader)
	}
}

func TestReaderCommands(t *testing.T) {
	tests := []struct {
		reader   string
		wantArg0 string
	}{
		{"zathura", "zathura"},
		{"evince", "evince"},
		{"okular", "okular"},
		{"system", "xdg-open"},
		{"unknown", "xdg-open"},
	}

	for _, tt := range tests {
		t.Run(tt.reader, func(t *testing.T) {
			o := NewOpener("/lib", tt.reader)
			cmd := o.linuxCommand("/lib/x.pdf")
			if filepath.Base(cmd.Path) != tt.wantArg0 && cmd.Args[0] != tt.wantArg0 {
				t.Errorf("linuxCommand() = %v, want %s", cmd.Args, tt.wantArg0)
			}
		})
	}
}

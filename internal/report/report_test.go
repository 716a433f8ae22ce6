package report

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestConsoleReport(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name  string
		level Level
		want  string
	}{
		{"info", Info, "library loaded\n"},
		{"warn", Warn, "library loaded\n"},
		{"error", Error, "ERROR: library loaded\n"},
		{"success", Success, "library loaded\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			NewConsole(&buf).Report(tt.level, "library %s", "loaded")
			if got := buf.String(); got != tt.want {
				t.Errorf("Report() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

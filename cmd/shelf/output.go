package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	DefaultListLimit = 50 // Default limit for the list command

	ListTitleMaxLen   = 50 // Title truncation in list output
	DetailTitleMaxLen = 70 // Title truncation in get output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatAuthors formats authors with "et al." for more than maxCount.
func formatAuthors(authors []string, maxCount int) string {
	if len(authors) == 0 {
		return ""
	}

	var names []string
	for i, a := range authors {
		if i >= maxCount {
			names = append(names, "et al.")
			break
		}
		names = append(names, a)
	}
	return strings.Join(names, ", ")
}

// recordAuthors extracts the authors field from a decoded record.
func recordAuthors(rec map[string]any) []string {
	raw, ok := rec["authors"].([]any)
	if !ok {
		return nil
	}
	authors := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			authors = append(authors, s)
		}
	}
	return authors
}

// recordString extracts a string field from a decoded record.
func recordString(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

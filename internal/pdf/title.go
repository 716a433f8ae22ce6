package pdf

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractTitle attempts to extract a document title from a PDF.
// Best effort: the first substantial line of the first page.
func ExtractTitle(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return "", nil
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return "", nil
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", nil
	}

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 20 && !isHeaderLine(line) {
			return line, nil
		}
	}

	return "", nil
}

// PageCount returns the number of pages in a PDF file.
func PageCount(filePath string) (int, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return r.NumPage(), nil
}

// isHeaderLine checks if a line is likely a running header or imprint.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "copyright") {
		return true
	}
	if strings.Contains(lower, "all rights reserved") {
		return true
	}
	if strings.Contains(lower, "edition") && strings.Contains(lower, "printed") {
		return true
	}
	if strings.Contains(lower, "volume") && strings.Contains(lower, "issue") {
		return true
	}
	return false
}

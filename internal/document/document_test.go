package document

import (
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag    string
		want   Kind
		wantOK bool
	}{
		{"Book", KindBook, true},
		{"Slide", KindSlide, true},
		{"ClassNote", KindClassNote, true},
		{"book", "", false},
		{"BOOK", "", false},
		{"Magazine", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := ParseKind(tt.tag)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tt.tag, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseKind_DynamicString(t *testing.T) {
	tag := strings.Join([]string{"Sl", "ide"}, "")
	got, ok := ParseKind(tag)
	if !ok || got != KindSlide {
		t.Errorf("ParseKind(%q) = (%q, %v), want (Slide, true)", tag, got, ok)
	}
}

func TestBufferString(t *testing.T) {
	buf := Buffer{"title": "T", "publishYear": 1994, "authors": []string{"A"}}

	if got := buf.String("title"); got != "T" {
		t.Errorf("String(title) = %q, want T", got)
	}
	if got := buf.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	// Non-string values read as empty rather than panicking
	if got := buf.String("publishYear"); got != "" {
		t.Errorf("String(publishYear) = %q, want empty", got)
	}
}

func TestBufferStrings(t *testing.T) {
	buf := Buffer{"authors": []string{"A", "B"}, "title": "T"}

	got := buf.Strings("authors")
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Strings(authors) = %v", got)
	}
	if buf.Strings("missing") != nil {
		t.Error("Strings(missing) should be nil")
	}
	if buf.Strings("title") != nil {
		t.Error("Strings(title) should be nil for a scalar value")
	}
}

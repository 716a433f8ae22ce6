// Package document defines the record shapes stored in the library collections.
package document

// Kind discriminates the three record shapes.
type Kind string

const (
	KindBook      Kind = "Book"
	KindSlide     Kind = "Slide"
	KindClassNote Kind = "ClassNote"
)

// ParseKind maps a kind tag to its Kind. Tags are compared by value, so
// dynamically built strings behave the same as literals. Unknown tags
// report false.
func ParseKind(tag string) (Kind, bool) {
	switch Kind(tag) {
	case KindBook:
		return KindBook, true
	case KindSlide:
		return KindSlide, true
	case KindClassNote:
		return KindClassNote, true
	default:
		return "", false
	}
}

// Buffer is the field/value map the CLI assembles before a record is
// persisted. Scalar fields are strings, authors is a []string, and the kind
// tag lives under "type". Fields a kind does not declare are ignored.
type Buffer map[string]any

// String returns the string value for key, or "" if absent or not a string.
func (b Buffer) String(key string) string {
	s, _ := b[key].(string)
	return s
}

// Strings returns the []string value for key, or nil.
func (b Buffer) Strings(key string) []string {
	v, _ := b[key].([]string)
	return v
}

// Book is the record shape for the books collection.
type Book struct {
	Title            string   `json:"title"`
	Path             string   `json:"path"`
	Authors          []string `json:"authors"`
	SubTitle         string   `json:"subTitle"`
	FieldOfKnowledge string   `json:"fieldOfKnowledge"`
	PublishYear      *int     `json:"publishYear,omitempty"` // nil when unknown or unparsable
}

// Slide is the record shape for the slides collection.
type Slide struct {
	Title           string   `json:"title"`
	Path            string   `json:"path"`
	Authors         []string `json:"authors"`
	LectureName     string   `json:"lectureName"`
	InstitutionName string   `json:"institutionName"`
}

// ClassNote is the record shape for the class notes collection.
type ClassNote struct {
	Title           string   `json:"title"`
	Path            string   `json:"path"`
	Authors         []string `json:"authors"`
	SubTitle        string   `json:"subTitle"`
	LectureName     string   `json:"lectureName"`
	InstitutionName string   `json:"institutionName"`
}

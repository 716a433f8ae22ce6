package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matsen/shelf/internal/config"
	"github.com/matsen/shelf/internal/document"
	"github.com/matsen/shelf/internal/report"
)

// Store mediates all access to the four database files of a repository:
// config.json plus one collection file per document kind.
//
// Validation problems (unknown kind, entry not found, immutable field) are
// reported through the injected reporter and surface as a false result with a
// nil error; I/O and parse failures come back as errors for the caller to
// handle.
type Store struct {
	configPath     string
	booksPath      string
	slidesPath     string
	classNotesPath string

	rep report.Reporter
}

// New returns a Store for the repository rooted at root.
func New(root string, rep report.Reporter) *Store {
	if rep == nil {
		rep = report.NewConsole(os.Stderr)
	}
	return &Store{
		configPath:     config.ConfigPath(root),
		booksPath:      config.BooksPath(root),
		slidesPath:     config.SlidesPath(root),
		classNotesPath: config.ClassNotesPath(root),
		rep:            rep,
	}
}

// ConfigPath returns the path to the repository config file.
func (s *Store) ConfigPath() string { return s.configPath }

// BooksPath returns the path to the books collection file.
func (s *Store) BooksPath() string { return s.booksPath }

// SlidesPath returns the path to the slides collection file.
func (s *Store) SlidesPath() string { return s.slidesPath }

// ClassNotesPath returns the path to the class notes collection file.
func (s *Store) ClassNotesPath() string { return s.classNotesPath }

// CollectionPath returns the collection file for a kind.
func (s *Store) CollectionPath(kind document.Kind) string {
	switch kind {
	case document.KindSlide:
		return s.slidesPath
	case document.KindClassNote:
		return s.classNotesPath
	default:
		return s.booksPath
	}
}

// LibraryPath returns the configured library root from config.json.
// Reports false if the key is absent.
func (s *Store) LibraryPath() (string, bool, error) {
	return ReadField(s.configPath, config.KeyLibraryPath)
}

// AddRecord constructs a typed record from the buffer and appends it to the
// collection for its kind, rewriting the whole file. The kind tag is read
// from the buffer's "type" key; a missing or unrecognized tag is reported
// and returns false without touching any file.
func (s *Store) AddRecord(buf document.Buffer) (bool, error) {
	tag, ok := buf["type"].(string)
	if !ok {
		s.rep.Report(report.Error, "missing 'type' key in record buffer")
		return false, nil
	}

	kind, ok := document.ParseKind(tag)
	if !ok {
		s.rep.Report(report.Error, "invalid document type %q", tag)
		return false, nil
	}

	var (
		path string
		rec  any
	)
	switch kind {
	case document.KindBook:
		path, rec = s.booksPath, s.bookFromBuffer(buf)
	case document.KindSlide:
		path, rec = s.slidesPath, slideFromBuffer(buf)
	case document.KindClassNote:
		path, rec = s.classNotesPath, classNoteFromBuffer(buf)
	}

	if err := s.appendRecord(path, rec); err != nil {
		return false, err
	}
	return true, nil
}

// bookFromBuffer builds a Book from whitelisted buffer fields. An
// unparsable publish year is a warning and leaves the field unset; the
// record is still persisted.
func (s *Store) bookFromBuffer(buf document.Buffer) document.Book {
	book := document.Book{
		Title:            buf.String("title"),
		Path:             buf.String("path"),
		Authors:          buf.Strings("authors"),
		SubTitle:         buf.String("subTitle"),
		FieldOfKnowledge: buf.String("fieldOfKnowledge"),
	}

	if raw := buf.String("publishYear"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			s.rep.Report(report.Warn, "invalid publish year %q: value should be an integer", raw)
		} else {
			book.PublishYear = &year
		}
	}

	return book
}

func slideFromBuffer(buf document.Buffer) document.Slide {
	return document.Slide{
		Title:           buf.String("title"),
		Path:            buf.String("path"),
		Authors:         buf.Strings("authors"),
		LectureName:     buf.String("lectureName"),
		InstitutionName: buf.String("institutionName"),
	}
}

func classNoteFromBuffer(buf document.Buffer) document.ClassNote {
	return document.ClassNote{
		Title:           buf.String("title"),
		Path:            buf.String("path"),
		Authors:         buf.Strings("authors"),
		SubTitle:        buf.String("subTitle"),
		LectureName:     buf.String("lectureName"),
		InstitutionName: buf.String("institutionName"),
	}
}

func (s *Store) appendRecord(path string, rec any) error {
	records, err := ReadCollection(path)
	if err != nil {
		return err
	}

	m, err := recordToMap(rec)
	if err != nil {
		return err
	}

	return WriteCollection(path, append(records, m))
}

// RemoveEntry deletes every record whose title matches from the collection
// at path. The returned value is infoField captured from the first match in
// scan order before anything is removed. Matches are dropped by descending
// index so surviving indices stay valid; surviving order is preserved.
// A miss is reported and returns found=false without rewriting the file.
func (s *Store) RemoveEntry(path, title, infoField string) (string, bool, error) {
	records, err := ReadCollection(path)
	if err != nil {
		return "", false, err
	}

	var info string
	for _, rec := range records {
		if recordTitle(rec) == title {
			info, _ = rec[infoField].(string)
			break
		}
	}

	removed := false
	for i := len(records) - 1; i >= 0; i-- {
		if recordTitle(records[i]) == title {
			records = append(records[:i], records[i+1:]...)
			removed = true
		}
	}

	if !removed {
		s.rep.Report(report.Error, "entry %q not found in database", title)
		return "", false, nil
	}

	if err := WriteCollection(path, records); err != nil {
		return "", false, err
	}
	return info, true, nil
}

// FindByTitle returns the first record whose title matches, or found=false.
func (s *Store) FindByTitle(path, title string) (Record, bool, error) {
	records, err := ReadCollection(path)
	if err != nil {
		return nil, false, err
	}

	for _, rec := range records {
		if recordTitle(rec) == title {
			return rec, true, nil
		}
	}
	return nil, false, nil
}

// EditFieldByTitle interactively edits one field of the first record whose
// title matches. Prompts are written to out and answers read line-wise from
// in. The title itself is immutable: asking for it re-prompts instead of
// terminating. Only the first matching record is updated even when duplicate
// titles exist (removal, by contrast, hits all of them).
func (s *Store) EditFieldByTitle(path, title string, in io.Reader, out io.Writer) (bool, error) {
	records, err := ReadCollection(path)
	if err != nil {
		return false, err
	}

	idx := -1
	for i, rec := range records {
		if recordTitle(rec) == title {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.rep.Report(report.Error, "no entry found with title %q", title)
		return false, nil
	}

	reader := bufio.NewReader(in)

	var field string
	for {
		fmt.Fprintln(out, "Enter the field to edit (e.g., authors, path, subTitle):")
		line, err := readLine(reader)
		if err != nil {
			return false, fmt.Errorf("reading field name: %w", err)
		}
		field = line

		if _, ok := records[idx][field]; !ok {
			s.rep.Report(report.Error, "field %q does not exist in %q", field, title)
			return false, nil
		}
		if field == "title" {
			s.rep.Report(report.Warn, "the title cannot be edited, try another field")
			continue
		}
		break
	}

	fmt.Fprintln(out, "Enter the new value:")
	value, err := readLine(reader)
	if err != nil {
		return false, fmt.Errorf("reading new value: %w", err)
	}

	records[idx][field] = value

	if err := WriteCollection(path, records); err != nil {
		return false, err
	}

	s.rep.Report(report.Success, "field updated successfully")
	return true, nil
}

// readLine reads one trimmed line, tolerating a missing final newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func recordTitle(rec Record) string {
	t, _ := rec["title"].(string)
	return t
}

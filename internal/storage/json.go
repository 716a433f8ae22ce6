// Package storage handles persistence of the flat JSON database files.
//
// Every mutation is a whole-file read, in-memory change, whole-file rewrite.
// Nothing locks the files, so a single writer is assumed; concurrent writers
// can corrupt data.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is one document entry as stored on disk. Keeping records as plain
// maps preserves fields that a given operation does not know about.
type Record = map[string]any

// ReadField parses the file as a JSON object and returns the text value of
// field. Missing fields and non-string values report false; unreadable or
// malformed files are an error.
func ReadField(path, field string) (string, bool, error) {
	obj, err := readObject(path)
	if err != nil {
		return "", false, err
	}

	v, ok := obj[field]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, nil
	}
	return s, true, nil
}

// WriteField sets field to value in the JSON object at path and rewrites the
// entire file. The write is not atomic; a crash mid-write can truncate the
// file. Accepted risk for a single-user tool.
func WriteField(path, field, value string) error {
	obj, err := readObject(path)
	if err != nil {
		return err
	}

	obj[field] = value

	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadCollection parses the file as a JSON array of records, preserving
// order. Collection files are bundled with the repository, so a missing file
// is an error rather than an empty collection.
func ReadCollection(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// WriteCollection rewrites the entire collection file with indented output.
func WriteCollection(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return obj, nil
}

// recordToMap converts a typed record to its on-disk map form.
func recordToMap(rec any) (Record, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}

	var m Record
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return m, nil
}

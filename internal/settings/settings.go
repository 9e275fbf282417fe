// Package settings reads and patches the editor's JSON settings document.
// Only one key is ever modified; every other key passes through untouched.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"promptsync/internal/log"
)

// Document is the parsed settings file. Keys the tool does not know about
// are preserved as-is across a load/save cycle.
type Document map[string]any

// Load reads the settings document from path. A missing file yields an
// empty document; malformed JSON is an error.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("settings").
				Str("path", path).
				Msg("Settings file missing, starting from empty document")
			return Document{}, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

// SetFileList replaces the value under key with the given ordered name list.
func (d Document) SetFileList(key string, names []string) {
	list := make([]any, len(names))
	for i, name := range names {
		list[i] = name
	}
	d[key] = list
}

// FileList returns the string entries under key. Non-list values and
// non-string elements are ignored.
func (d Document) FileList(key string) []string {
	raw, ok := d[key].([]any)
	if !ok {
		return nil
	}

	var names []string
	for _, item := range raw {
		if name, ok := item.(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// Save writes the document to path with stable formatting, atomically via
// a temporary file in the same directory.
func Save(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("move settings file into place: %w", err)
	}

	log.Debug("settings").
		Str("path", path).
		Int("keys", len(doc)).
		Msg("Settings file written")

	return nil
}

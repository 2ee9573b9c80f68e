package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Document is the file an editing session reads from and writes to.
type Document struct {
	// Path is the file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// New reports that the file did not exist when opened.
	New bool
}

// OpenDocument reads path and returns the document and its content with
// line endings normalized to "\n". A missing file opens empty.
func OpenDocument(path string) (*Document, string, error) {
	if path == "" {
		return &Document{Name: "Untitled"}, "", nil
	}

	doc := &Document{Path: path, Name: filepath.Base(path)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		doc.New = true
		return doc, "", nil
	}
	if err != nil {
		return nil, "", NewOperationError("open", path, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return doc, content, nil
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Save writes content to the document's path.
func (d *Document) Save(content string) error {
	if d.IsScratch() {
		return ErrNoFilename
	}
	return d.SaveAs(d.Path, content)
}

// SaveAs writes content to path and makes it the document's path.
func (d *Document) SaveAs(path, content string) error {
	if path == "" {
		return ErrNoFilename
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return NewOperationError("save", path, err)
	}
	d.Path = path
	d.Name = filepath.Base(path)
	d.New = false
	return nil
}

package source

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Source is a readable settings document.
type Source interface {
	// Location describes the source in diagnostics.
	Location() string
	// Open returns a new reader positioned at the start of the document.
	Open() (io.ReadCloser, error)
}

// FileSource reads a document from the file system.
type FileSource struct {
	Path string
}

// NewFile returns a source for the file at path.
func NewFile(path string) *FileSource {
	return &FileSource{Path: path}
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.Path
}

// Open opens the file for reading.
func (s *FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsNotExist reports whether err means the document does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// StringSource holds a document in memory.
type StringSource struct {
	text     string
	location string
}

// NewString returns an in-memory source. An empty location is reported as
// "(memory)".
func NewString(text, location string) *StringSource {
	if location == "" {
		location = "(memory)"
	}
	return &StringSource{text: text, location: location}
}

// Location returns the location given to NewString.
func (s *StringSource) Location() string {
	return s.location
}

// Text returns the document.
func (s *StringSource) Text() string {
	return s.text
}

// Open returns a reader over the document.
func (s *StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.text)), nil
}

// String implements fmt.Stringer.
func (s *StringSource) String() string {
	return s.location
}

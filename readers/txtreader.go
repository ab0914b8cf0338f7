package readers

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// SupportedExtensions lists the file types the text reader accepts.
var SupportedExtensions = []string{".txt", ".md", ".json", ".py", ".yaml", ".yml", ".csv"}

// ReadError reports a file that could not be turned into text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %s: %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// TxtFileReader reads plain text files as UTF-8 and falls back to
// ISO-8859-1 when the content is not valid UTF-8.
type TxtFileReader struct{}

func (r *TxtFileReader) Exts() []string {
	return slices.Clone(SupportedExtensions)
}

func (r *TxtFileReader) CanRead(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedExtensions, ext)
}

func (r *TxtFileReader) ReadText(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	if utf8.Valid(buf) {
		return string(buf), nil
	}

	text, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	if err != nil {
		return "", &ReadError{Path: path, Err: fmt.Errorf("latin-1 fallback: %w", err)}
	}

	return string(text), nil
}

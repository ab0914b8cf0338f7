package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

type FileReader interface {
	Exts() []string
	CanRead(path string) bool
	ReadText(path string) (string, error)
}

// FileDescriptor describes one file found under the ingestion root.
// RelPath always uses forward slashes.
type FileDescriptor struct {
	Path    string
	Name    string
	Ext     string
	RelPath string
}

type Scanner struct {
	log    *slog.Logger
	reader FileReader
}

func NewScanner(log *slog.Logger, reader FileReader) *Scanner {
	return &Scanner{log: log, reader: reader}
}

// Scan walks root in lexical order and returns every regular file the
// reader accepts. A symlinked root is followed, links below it are not.
func (s *Scanner) Scan(root string) ([]FileDescriptor, error) {
	dir, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	var files []FileDescriptor
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			s.log.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if path == dir || !s.reader.CanRead(path) {
			return nil
		}

		if !d.Type().IsRegular() {
			s.log.Info(fmt.Sprintf("ignoring %s", d.Name()), "path", path)
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		files = append(files, FileDescriptor{
			Path:    path,
			Name:    d.Name(),
			Ext:     filepath.Ext(d.Name()),
			RelPath: filepath.ToSlash(rel),
		})

		return nil
	})
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}

	return files, nil
}

func resolveRoot(root string) (string, error) {
	dir, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", &ScanError{Root: root, Err: err}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", &ScanError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return "", &ScanError{Root: root, Err: errors.New("not a directory")}
	}

	return dir, nil
}

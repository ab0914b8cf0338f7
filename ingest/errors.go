package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoFiles = errors.New("no supported files found")

// ScanError reports an unusable ingestion root.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %s", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NoFilesError is returned when the root holds nothing the readers accept.
type NoFilesError struct {
	Root string
	Exts []string
}

func (e *NoFilesError) Error() string {
	return fmt.Sprintf("no supported files found in %s (supported extensions: %s)", e.Root, strings.Join(e.Exts, ", "))
}

func (e *NoFilesError) Unwrap() error {
	return ErrNoFiles
}

type ChunkConfigError struct {
	Size    int
	Overlap int
}

func (e *ChunkConfigError) Error() string {
	return fmt.Sprintf("invalid chunking: size %d, overlap %d (need size > 0 and 0 <= overlap < size)", e.Size, e.Overlap)
}

// IngestionError reports a batch the collection refused.
type IngestionError struct {
	// Batch is the zero based index of the failed batch.
	Batch    int
	Batches  int
	Ingested int
	Err      error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("batch %d/%d failed after %d documents were ingested: %s", e.Batch+1, e.Batches, e.Ingested, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

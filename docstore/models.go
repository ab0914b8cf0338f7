package docstore

import (
	"errors"
	"fmt"
)

// Metadata keys as stored alongside every chunk.
const (
	FilePath    = "file_path"
	FileName    = "file_name"
	Extension   = "extension"
	ChunkIndex  = "chunk_index"
	TotalChunks = "total_chunks"
)

var ErrCollectionNotFound = errors.New("collection not found")

// Metadata is the provenance of a single chunk.
type Metadata struct {
	FilePath    string `json:"file_path"`
	FileName    string `json:"file_name"`
	Extension   string `json:"extension"`
	ChunkIndex  int    `json:"chunk_index"`
	TotalChunks int    `json:"total_chunks"`
}

func (m Metadata) Validate() error {
	if m.FilePath == "" {
		return errors.New("metadata: empty file path")
	}
	if m.TotalChunks <= 0 {
		return fmt.Errorf("metadata: total chunks must be positive, got %d", m.TotalChunks)
	}
	if m.ChunkIndex < 0 || m.ChunkIndex >= m.TotalChunks {
		return fmt.Errorf("metadata: chunk index %d out of range [0, %d)", m.ChunkIndex, m.TotalChunks)
	}

	return nil
}

// Document is one chunk ready to be added to a collection.
type Document struct {
	ID       string
	Content  string
	Metadata Metadata
}

type SearchResult struct {
	Text     string
	Metadata Metadata
	Distance float64
}

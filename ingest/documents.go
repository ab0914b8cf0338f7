package ingest

import (
	"fmt"

	"github.com/gamma-omg/rag-loader/docstore"
)

// DocumentID is stable across runs for the same file and chunk.
func DocumentID(relPath string, chunkIndex int) string {
	return fmt.Sprintf("%s_%d", relPath, chunkIndex)
}

// Assemble turns the chunks of one file into documents ready for a collection.
func Assemble(file FileDescriptor, chunks []Chunk) ([]docstore.Document, error) {
	docs := make([]docstore.Document, 0, len(chunks))
	for i, c := range chunks {
		if c.Index != i {
			return nil, fmt.Errorf("chunk %d of %s is out of order (index %d)", i, file.RelPath, c.Index)
		}

		meta := docstore.Metadata{
			FilePath:    file.RelPath,
			FileName:    file.Name,
			Extension:   file.Ext,
			ChunkIndex:  c.Index,
			TotalChunks: len(chunks),
		}
		if err := meta.Validate(); err != nil {
			return nil, fmt.Errorf("invalid metadata for %s: %w", file.RelPath, err)
		}

		docs = append(docs, docstore.Document{
			ID:       DocumentID(file.RelPath, c.Index),
			Content:  c.Text,
			Metadata: meta,
		})
	}

	return docs, nil
}

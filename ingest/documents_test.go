package ingest

import (
	"testing"

	"github.com/gamma-omg/rag-loader/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Assemble(t *testing.T) {
	file := FileDescriptor{
		Path:    "/data/notes/facts.md",
		Name:    "facts.md",
		Ext:     ".md",
		RelPath: "notes/facts.md",
	}
	ch, err := NewChunkifier(4, 1)
	require.NoError(t, err)

	docs, err := Assemble(file, ch.Chunkify("Bananas are berries"))
	require.NoError(t, err)
	require.Len(t, docs, 6)

	for i, d := range docs {
		assert.Equal(t, DocumentID("notes/facts.md", i), d.ID)
		assert.Equal(t, i, d.Metadata.ChunkIndex)
		assert.Equal(t, 6, d.Metadata.TotalChunks)
	}
	assert.Equal(t, docstore.Document{
		ID:      "notes/facts.md_0",
		Content: "Bana",
		Metadata: docstore.Metadata{
			FilePath:    "notes/facts.md",
			FileName:    "facts.md",
			Extension:   ".md",
			ChunkIndex:  0,
			TotalChunks: 6,
		},
	}, docs[0])
}

func Test_Assemble_StableIDs(t *testing.T) {
	file := FileDescriptor{Path: "/x/a.txt", Name: "a.txt", Ext: ".txt", RelPath: "a.txt"}
	ch, err := NewChunkifier(10, 3)
	require.NoError(t, err)

	text := "The quick brown fox jumps over the lazy dog"
	first, err := Assemble(file, ch.Chunkify(text))
	require.NoError(t, err)
	second, err := Assemble(file, ch.Chunkify(text))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_Assemble_OutOfOrder(t *testing.T) {
	file := FileDescriptor{Path: "/x/a.txt", Name: "a.txt", Ext: ".txt", RelPath: "a.txt"}

	_, err := Assemble(file, []Chunk{{Text: "a", Index: 1}})
	assert.Error(t, err)
}

func Test_Assemble_Empty(t *testing.T) {
	file := FileDescriptor{Path: "/x/a.txt", Name: "a.txt", Ext: ".txt", RelPath: "a.txt"}

	docs, err := Assemble(file, nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

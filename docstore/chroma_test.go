package docstore

import (
	"testing"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/stretchr/testify/assert"
)

func Test_chromaURL(t *testing.T) {
	assert.Equal(t, "http://chroma:8000", chromaURL("chroma:8000"))
	assert.Equal(t, "http://chroma:8000", chromaURL("chroma:8000/"))
	assert.Equal(t, "https://chroma.example.com", chromaURL("https://chroma.example.com"))
}

func Test_ChromaMetadata_RoundTrip(t *testing.T) {
	m := Metadata{
		FilePath:    "notes/facts.md",
		FileName:    "facts.md",
		Extension:   ".md",
		ChunkIndex:  2,
		TotalChunks: 3,
	}

	assert.Equal(t, m, fromChromaMetadata(toChromaMetadata(m)))
}

func Test_fromChromaMetadata_FloatNumbers(t *testing.T) {
	meta := chroma.NewDocumentMetadata(
		chroma.NewStringAttribute(FilePath, "a.txt"),
		chroma.NewFloatAttribute(ChunkIndex, 1),
		chroma.NewFloatAttribute(TotalChunks, 4),
	)

	m := fromChromaMetadata(meta)
	assert.Equal(t, "a.txt", m.FilePath)
	assert.Equal(t, 1, m.ChunkIndex)
	assert.Equal(t, 4, m.TotalChunks)
}

func Test_fromChromaMetadata_Nil(t *testing.T) {
	assert.Equal(t, Metadata{}, fromChromaMetadata(nil))
}

package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Metadata_Validate(t *testing.T) {
	valid := Metadata{FilePath: "a.txt", FileName: "a.txt", Extension: ".txt", ChunkIndex: 0, TotalChunks: 1}
	assert.NoError(t, valid.Validate())

	noPath := valid
	noPath.FilePath = ""
	assert.Error(t, noPath.Validate())

	outOfRange := valid
	outOfRange.ChunkIndex = 1
	assert.Error(t, outOfRange.Validate())

	negative := valid
	negative.ChunkIndex = -1
	assert.Error(t, negative.Validate())

	noChunks := valid
	noChunks.TotalChunks = 0
	assert.Error(t, noChunks.Validate())
}

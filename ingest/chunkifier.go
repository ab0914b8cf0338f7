package ingest

// Chunk is a window of a file's text. Start is measured in characters.
type Chunk struct {
	Text  string
	Start int
	Index int
}

// Chunkifier splits text into windows of size characters where neighbours
// share overlap characters.
type Chunkifier struct {
	size    int
	overlap int
}

func NewChunkifier(size, overlap int) (*Chunkifier, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, &ChunkConfigError{Size: size, Overlap: overlap}
	}

	return &Chunkifier{size: size, overlap: overlap}, nil
}

func (c *Chunkifier) Chunkify(text string) []Chunk {
	runes := []rune(text)
	l := len(runes)
	if l == 0 {
		return []Chunk{}
	}

	step := c.size - c.overlap
	pos := 0
	res := make([]Chunk, 0, l/step+1)

	for {
		end := min(pos+c.size, l)
		res = append(res, Chunk{
			Text:  string(runes[pos:end]),
			Start: pos,
			Index: len(res),
		})
		if end >= l {
			break
		}

		pos += step
	}

	return res
}

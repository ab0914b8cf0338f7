package query

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gamma-omg/rag-loader/docstore"
	mocks "github.com/gamma-omg/rag-loader/mocks/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_Interactive(t *testing.T) {
	col := mocks.NewMockCollection(t)
	col.EXPECT().Count(mock.Anything).Return(2, nil)
	col.EXPECT().Query(mock.Anything, "bananas", 3).
		Return([]docstore.SearchResult{result("fruit.txt", 0, 1, 0.2, "Bananas are berries.")}, nil).Once()
	col.EXPECT().Get(mock.Anything, StatsSampleSize).
		Return([]docstore.Metadata{{FilePath: "fruit.txt", TotalChunks: 1}}, nil).Once()

	client := mocks.NewMockClient(t)
	client.EXPECT().GetCollection(mock.Anything, "docs").Return(col, nil)

	in := strings.NewReader("help\n\n  bananas  \nSTATS\nquit\nnever reached\n")
	var out bytes.Buffer

	d := NewDriver(discardLogger(), client, "docs")
	require.NoError(t, d.Interactive(context.Background(), in, &out, 3))

	s := out.String()
	assert.Contains(t, s, "VectorDB Query Interface")
	assert.Contains(t, s, "stats - Show collection statistics")
	assert.Contains(t, s, "Query: 'bananas'")
	assert.Contains(t, s, "Bananas are berries.")
	assert.Contains(t, s, "Total documents: 2")
	assert.NotContains(t, s, "never reached")
}

func Test_Interactive_MissingCollection(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.EXPECT().GetCollection(mock.Anything, "docs").
		Return(nil, fmt.Errorf("%w: docs", docstore.ErrCollectionNotFound))

	var out bytes.Buffer
	d := NewDriver(discardLogger(), client, "docs")
	require.NoError(t, d.Interactive(context.Background(), strings.NewReader("venus\nstats\n"), &out, 5))

	s := out.String()
	assert.Contains(t, s, "Please run ingestion first")
	assert.Contains(t, s, "Error getting statistics")
}

func Test_PrintQuery_InvalidK(t *testing.T) {
	d := NewDriver(discardLogger(), mocks.NewMockClient(t), "docs")

	var out bytes.Buffer
	err := d.PrintQuery(context.Background(), &out, "venus", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, out.String())
}

func Test_Interactive_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)

	col := mocks.NewMockCollection(t)
	col.EXPECT().Count(mock.Anything).Return(1, nil)
	col.EXPECT().Query(mock.Anything, long, 5).Return(nil, nil).Once()

	client := mocks.NewMockClient(t)
	client.EXPECT().GetCollection(mock.Anything, "docs").Return(col, nil)

	in := strings.NewReader(long + "\nhelp\nquit")
	var out bytes.Buffer
	d := NewDriver(discardLogger(), client, "docs")
	require.NoError(t, d.Interactive(context.Background(), in, &out, 5))

	s := out.String()
	assert.Contains(t, s, "No results found.")
	assert.Contains(t, s, "quit/exit - Exit the program")
}

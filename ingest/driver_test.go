package ingest

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gamma-omg/rag-loader/docstore"
	mocks "github.com/gamma-omg/rag-loader/mocks/docstore"
	"github.com/gamma-omg/rag-loader/readers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeCollection struct {
	mu          sync.Mutex
	name        string
	items       map[string]docstore.Document
	addCalls    [][]docstore.Document
	forgetCalls []string
	// failAdd fails the add call with the given sequence number
	failAdd map[int]error
}

func newFakeCollection(name string) *fakeCollection {
	return &fakeCollection{name: name, items: make(map[string]docstore.Document)}
}

func (c *fakeCollection) Name() string { return c.name }

func (c *fakeCollection) Add(ctx context.Context, docs []docstore.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := len(c.addCalls)
	c.addCalls = append(c.addCalls, docs)
	if err, ok := c.failAdd[call]; ok {
		return err
	}

	for _, d := range docs {
		if _, ok := c.items[d.ID]; !ok {
			c.items[d.ID] = d
		}
	}

	return nil
}

func (c *fakeCollection) Forget(ctx context.Context, filePath string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.forgetCalls = append(c.forgetCalls, filePath)
	for id, d := range c.items {
		if d.Metadata.FilePath == filePath {
			delete(c.items, id)
		}
	}

	return nil
}

func (c *fakeCollection) Count(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items), nil
}

func (c *fakeCollection) Get(ctx context.Context, limit int) ([]docstore.Metadata, error) {
	panic("not implemented")
}

func (c *fakeCollection) Query(ctx context.Context, text string, n int) ([]docstore.SearchResult, error) {
	panic("not implemented")
}

func (c *fakeCollection) ids() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

func (c *fakeCollection) content(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.items[id].Content
}

type fakeClient struct {
	cols map[string]*fakeCollection
}

func newFakeClient(cols ...*fakeCollection) *fakeClient {
	c := &fakeClient{cols: make(map[string]*fakeCollection)}
	for _, col := range cols {
		c.cols[col.name] = col
	}

	return c
}

func (c *fakeClient) GetOrCreateCollection(ctx context.Context, name string) (docstore.Collection, error) {
	col, ok := c.cols[name]
	if !ok {
		col = newFakeCollection(name)
		c.cols[name] = col
	}

	return col, nil
}

func (c *fakeClient) GetCollection(ctx context.Context, name string) (docstore.Collection, error) {
	col, ok := c.cols[name]
	if !ok {
		return nil, docstore.ErrCollectionNotFound
	}

	return col, nil
}

func (c *fakeClient) DeleteCollection(ctx context.Context, name string) error {
	delete(c.cols, name)
	return nil
}

func (c *fakeClient) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	for n := range c.cols {
		names = append(names, n)
	}

	return names, nil
}

func (c *fakeClient) Close() error { return nil }

// failingReader fails for files whose name is listed in bad.
type failingReader struct {
	readers.TxtFileReader
	bad []string
}

func (r *failingReader) ReadText(path string) (string, error) {
	if slices.Contains(r.bad, filepath.Base(path)) {
		return "", &readers.ReadError{Path: path, Err: errors.New("permission denied")}
	}

	return r.TxtFileReader.ReadText(path)
}

func newTestDriver(t *testing.T, reader FileReader, client docstore.Client, size, overlap int, opts Options) *Driver {
	t.Helper()

	ch, err := NewChunkifier(size, overlap)
	require.NoError(t, err)
	if opts.Collection == "" {
		opts.Collection = "default"
	}

	d, err := NewDriver(discardLogger(), reader, ch, client, opts)
	require.NoError(t, err)

	return d
}

func Test_Run_Batches(t *testing.T) {
	tmp := t.TempDir()
	// size 10, overlap 0: 2, 5 and 1 chunks
	writeFile(t, tmp, "a.txt", strings.Repeat("a", 20))
	writeFile(t, tmp, "b.md", strings.Repeat("b", 45))
	writeFile(t, tmp, "c.json", "{}")

	col := newFakeCollection("default")
	d := newTestDriver(t, &readers.TxtFileReader{}, newFakeClient(col), 10, 0, Options{BatchSize: 4})

	res, err := d.Run(context.Background(), tmp)
	require.NoError(t, err)

	assert.Equal(t, &RunResult{
		FilesFound:        3,
		DocumentsCreated:  8,
		DocumentsIngested: 8,
		CollectionCount:   8,
	}, res)

	require.Len(t, col.addCalls, 2)
	seen := make(map[string]struct{})
	for _, batch := range col.addCalls {
		assert.LessOrEqual(t, len(batch), 4)
		for _, d := range batch {
			seen[d.ID] = struct{}{}
		}
	}
	assert.Len(t, seen, 8)
}

func Test_Run_EndToEnd_IDs(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", strings.Repeat("x", 1000+200+1))

	col := newFakeCollection("default")
	d := newTestDriver(t, &readers.TxtFileReader{}, newFakeClient(col), 1000, 200, Options{BatchSize: 100})

	res, err := d.Run(context.Background(), tmp)
	require.NoError(t, err)
	assert.Equal(t, 2, res.DocumentsCreated)
	assert.Equal(t, []string{"a.txt_0", "a.txt_1"}, col.ids())
}

func Test_Run_ReadFailureDoesNotAbort(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "good.txt", "good content")
	writeFile(t, tmp, "bad.txt", "bad content")
	writeFile(t, tmp, "empty.txt", "")

	col := newFakeCollection("default")
	reader := &failingReader{bad: []string{"bad.txt"}}
	d := newTestDriver(t, reader, newFakeClient(col), 100, 10, Options{BatchSize: 10})

	res, err := d.Run(context.Background(), tmp)
	require.NoError(t, err)

	assert.Equal(t, 3, res.FilesFound)
	assert.Equal(t, 1, res.DocumentsCreated)
	require.Len(t, res.Failures, 1)

	var readErr *readers.ReadError
	require.ErrorAs(t, res.Failures[0], &readErr)
	assert.Equal(t, "bad.txt", filepath.Base(readErr.Path))
	assert.Equal(t, []string{"good.txt_0"}, col.ids())
}

func Test_Run_NoFiles(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "image.png", "png")

	col := newFakeCollection("default")
	d := newTestDriver(t, &readers.TxtFileReader{}, newFakeClient(col), 100, 10, Options{BatchSize: 10})

	_, err := d.Run(context.Background(), tmp)
	assert.ErrorIs(t, err, ErrNoFiles)
	assert.ErrorContains(t, err, ".yaml")
	assert.Empty(t, col.addCalls)
}

func Test_Run_MissingRoot(t *testing.T) {
	d := newTestDriver(t, &readers.TxtFileReader{}, newFakeClient(), 100, 10, Options{BatchSize: 10})

	_, err := d.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))

	var scanErr *ScanError
	assert.ErrorAs(t, err, &scanErr)
}

func Test_Run_BatchFailure(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", strings.Repeat("a", 30))

	boom := errors.New("boom")
	col := newFakeCollection("default")
	col.failAdd = map[int]error{1: boom}
	d := newTestDriver(t, &readers.TxtFileReader{}, newFakeClient(col), 10, 0, Options{BatchSize: 1})

	res, err := d.Run(context.Background(), tmp)

	var ierr *IngestionError
	require.ErrorAs(t, err, &ierr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ierr.Batch)
	assert.Equal(t, 3, ierr.Batches)
	assert.Equal(t, 1, ierr.Ingested)
	assert.Equal(t, 1, res.DocumentsIngested)
	assert.Len(t, col.addCalls, 2)
}

func Test_Run_BatchFailure_KeepGoing(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", strings.Repeat("a", 30))

	col := newFakeCollection("default")
	col.failAdd = map[int]error{0: errors.New("boom")}
	d := newTestDriver(t, &readers.TxtFileReader{}, newFakeClient(col), 10, 0, Options{BatchSize: 1, KeepGoing: true})

	res, err := d.Run(context.Background(), tmp)

	var ierr *IngestionError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 0, ierr.Batch)
	assert.Equal(t, 2, res.DocumentsIngested)
	assert.Len(t, col.addCalls, 3)
}

func Test_Run_RecreatesCollection(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", "content")

	col := mocks.NewMockCollection(t)
	col.EXPECT().Name().Return("docs").Maybe()
	col.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
	col.EXPECT().Count(mock.Anything).Return(1, nil).Once()

	client := mocks.NewMockClient(t)
	client.EXPECT().ListCollections(mock.Anything).Return([]string{"other", "docs"}, nil).Once()
	client.EXPECT().DeleteCollection(mock.Anything, "docs").Return(nil).Once()
	client.EXPECT().GetOrCreateCollection(mock.Anything, "docs").Return(col, nil).Once()

	d := newTestDriver(t, &readers.TxtFileReader{}, client, 100, 10, Options{Collection: "docs", BatchSize: 10})

	res, err := d.Run(context.Background(), tmp)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CollectionCount)
}

func Test_Run_AppendKeepsCollection(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", "content")

	col := mocks.NewMockCollection(t)
	col.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
	col.EXPECT().Count(mock.Anything).Return(5, nil).Once()

	client := mocks.NewMockClient(t)
	client.EXPECT().GetOrCreateCollection(mock.Anything, "docs").Return(col, nil).Once()

	d := newTestDriver(t, &readers.TxtFileReader{}, client, 100, 10, Options{Collection: "docs", BatchSize: 10, Append: true})

	res, err := d.Run(context.Background(), tmp)
	require.NoError(t, err)
	assert.Equal(t, 5, res.CollectionCount)
	client.AssertNotCalled(t, "DeleteCollection", mock.Anything, mock.Anything)
}

func Test_Run_AppendIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", strings.Repeat("a", 25))
	writeFile(t, tmp, "sub/b.txt", strings.Repeat("b", 5))

	col := newFakeCollection("default")
	d := newTestDriver(t, &readers.TxtFileReader{}, newFakeClient(col), 10, 2, Options{BatchSize: 3, Append: true})

	first, err := d.Run(context.Background(), tmp)
	require.NoError(t, err)
	second, err := d.Run(context.Background(), tmp)
	require.NoError(t, err)

	assert.Equal(t, first.CollectionCount, second.CollectionCount)
	assert.Equal(t, []string{"a.txt_0", "a.txt_1", "a.txt_2", "sub/b.txt_0"}, col.ids())
}

func Test_Batches(t *testing.T) {
	docs := make([]docstore.Document, 9)
	batches := Batches(docs, 4)

	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 4)
	assert.Len(t, batches[1], 4)
	assert.Len(t, batches[2], 1)
	assert.Empty(t, Batches(nil, 4))
}

func Test_NewDriver_InvalidOptions(t *testing.T) {
	ch, err := NewChunkifier(10, 1)
	require.NoError(t, err)

	_, err = NewDriver(discardLogger(), &readers.TxtFileReader{}, ch, newFakeClient(), Options{Collection: "c"})
	assert.Error(t, err)

	_, err = NewDriver(discardLogger(), &readers.TxtFileReader{}, ch, newFakeClient(), Options{BatchSize: 10})
	assert.Error(t, err)
}

func Test_EnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")

	created, err := EnsureRoot(root)
	require.NoError(t, err)
	assert.True(t, created)
	assert.DirExists(t, root)

	created, err = EnsureRoot(root)
	require.NoError(t, err)
	assert.False(t, created)
}

package docstore

import (
	"context"
	"fmt"
	"slices"
	"strings"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"
)

// ChromaClient talks to a remote Chroma server over HTTP.
type ChromaClient struct {
	client chroma.Client
	ef     embeddings.EmbeddingFunction
}

func NewChromaClient(ctx context.Context, addr string, ef embeddings.EmbeddingFunction) (*ChromaClient, error) {
	client, err := chroma.NewHTTPClient(chroma.WithBaseURL(chromaURL(addr)))
	if err != nil {
		return nil, fmt.Errorf("failed to create chroma client: %w", err)
	}

	if err := client.Heartbeat(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("chroma at %s is not reachable: %w", addr, err)
	}

	return &ChromaClient{client: client, ef: ef}, nil
}

func chromaURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return strings.TrimSuffix(addr, "/")
	}

	return "http://" + strings.TrimSuffix(addr, "/")
}

func (c *ChromaClient) GetOrCreateCollection(ctx context.Context, name string) (Collection, error) {
	col, err := c.client.GetOrCreateCollection(ctx, name, chroma.WithEmbeddingFunctionCreate(c.ef))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create collection %s: %w", name, err)
	}

	return &ChromaStore{col: col}, nil
}

func (c *ChromaClient) GetCollection(ctx context.Context, name string) (Collection, error) {
	col, err := c.client.GetCollection(ctx, name, chroma.WithEmbeddingFunctionGet(c.ef))
	if err == nil {
		return &ChromaStore{col: col}, nil
	}

	names, lerr := c.ListCollections(ctx)
	if lerr == nil && !slices.Contains(names, name) {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}

	return nil, fmt.Errorf("failed to get collection %s: %w", name, err)
}

func (c *ChromaClient) DeleteCollection(ctx context.Context, name string) error {
	err := c.client.DeleteCollection(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}

	return nil
}

func (c *ChromaClient) ListCollections(ctx context.Context) ([]string, error) {
	cols, err := c.client.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name())
	}

	return names, nil
}

func (c *ChromaClient) Close() error {
	return c.client.Close()
}

// ChromaStore is a single collection on a Chroma server.
type ChromaStore struct {
	col chroma.Collection
}

func (ds *ChromaStore) Name() string {
	return ds.col.Name()
}

func (ds *ChromaStore) Add(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	ids := make([]chroma.DocumentID, 0, len(docs))
	texts := make([]string, 0, len(docs))
	metas := make([]chroma.DocumentMetadata, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, chroma.DocumentID(d.ID))
		texts = append(texts, d.Content)
		metas = append(metas, toChromaMetadata(d.Metadata))
	}

	return ds.col.Add(ctx,
		chroma.WithIDs(ids...),
		chroma.WithTexts(texts...),
		chroma.WithMetadatas(metas...),
	)
}

func (ds *ChromaStore) Forget(ctx context.Context, filePath string) error {
	err := ds.col.Delete(ctx, chroma.WithWhereDelete(chroma.EqString(FilePath, filePath)))
	if err != nil {
		return fmt.Errorf("failed to forget doc %s: %w", filePath, err)
	}

	return nil
}

func (ds *ChromaStore) Count(ctx context.Context) (int, error) {
	return ds.col.Count(ctx)
}

func (ds *ChromaStore) Get(ctx context.Context, limit int) ([]Metadata, error) {
	res, err := ds.col.Get(ctx, chroma.WithLimitGet(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to sample collection: %w", err)
	}

	metas := res.GetMetadatas()
	out := make([]Metadata, 0, len(metas))
	for _, m := range metas {
		out = append(out, fromChromaMetadata(m))
	}

	return out, nil
}

func (ds *ChromaStore) Query(ctx context.Context, text string, n int) ([]SearchResult, error) {
	r, err := ds.col.Query(ctx,
		chroma.WithQueryTexts(text),
		chroma.WithNResults(n),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve texts: %w", err)
	}

	docGroups := r.GetDocumentsGroups()
	metaGroups := r.GetMetadatasGroups()
	distGroups := r.GetDistancesGroups()
	if len(docGroups) == 0 {
		return nil, nil
	}

	docs := docGroups[0]
	res := make([]SearchResult, 0, len(docs))
	for i := range len(docs) {
		sr := SearchResult{Text: docs[i].ContentString()}
		if len(metaGroups) > 0 && i < len(metaGroups[0]) {
			sr.Metadata = fromChromaMetadata(metaGroups[0][i])
		}
		if len(distGroups) > 0 && i < len(distGroups[0]) {
			sr.Distance = float64(distGroups[0][i])
		}
		res = append(res, sr)
	}

	return res, nil
}

func toChromaMetadata(m Metadata) chroma.DocumentMetadata {
	return chroma.NewDocumentMetadata(
		chroma.NewStringAttribute(FilePath, m.FilePath),
		chroma.NewStringAttribute(FileName, m.FileName),
		chroma.NewStringAttribute(Extension, m.Extension),
		chroma.NewIntAttribute(ChunkIndex, int64(m.ChunkIndex)),
		chroma.NewIntAttribute(TotalChunks, int64(m.TotalChunks)),
	)
}

func fromChromaMetadata(meta chroma.DocumentMetadata) Metadata {
	if meta == nil {
		return Metadata{}
	}

	path, _ := meta.GetString(FilePath)
	name, _ := meta.GetString(FileName)
	ext, _ := meta.GetString(Extension)

	return Metadata{
		FilePath:    path,
		FileName:    name,
		Extension:   ext,
		ChunkIndex:  metaInt(meta, ChunkIndex),
		TotalChunks: metaInt(meta, TotalChunks),
	}
}

// numbers may come back from the server as floats
func metaInt(meta chroma.DocumentMetadata, key string) int {
	if v, ok := meta.GetInt(key); ok {
		return int(v)
	}
	if v, ok := meta.GetFloat(key); ok {
		return int(v)
	}

	return 0
}

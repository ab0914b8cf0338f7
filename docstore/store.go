package docstore

import "context"

// Collection is a named set of embedded chunks with at most one entry per id.
type Collection interface {
	Name() string
	// Add stores docs. Ids that already exist in the collection are left untouched.
	Add(ctx context.Context, docs []Document) error
	// Forget removes every chunk that belongs to the given file.
	Forget(ctx context.Context, filePath string) error
	Count(ctx context.Context) (int, error)
	// Get returns the metadata of up to limit stored chunks.
	Get(ctx context.Context, limit int) ([]Metadata, error)
	// Query returns up to n chunks ordered by ascending distance to text.
	Query(ctx context.Context, text string, n int) ([]SearchResult, error)
}

type Client interface {
	GetOrCreateCollection(ctx context.Context, name string) (Collection, error)
	// GetCollection fails with ErrCollectionNotFound when name does not exist.
	GetCollection(ctx context.Context, name string) (Collection, error)
	DeleteCollection(ctx context.Context, name string) error
	ListCollections(ctx context.Context) ([]string, error)
	Close() error
}

package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gamma-omg/rag-loader/docstore"
)

const (
	DefaultResults = 5
	// StatsSampleSize bounds how many records Stats looks at.
	StatsSampleSize = 1000
)

var ErrInvalidArgument = errors.New("invalid argument")

// Stats is an approximate view of a collection: Files only lists the
// distinct sources found among the first Sampled records.
type Stats struct {
	Collection string
	Total      int
	Sampled    int
	Files      []string
}

type Driver struct {
	log        *slog.Logger
	client     docstore.Client
	collection string
}

func NewDriver(log *slog.Logger, client docstore.Client, collection string) *Driver {
	return &Driver{log: log, client: client, collection: collection}
}

// Query returns up to k chunks closest to text, most similar first.
func (d *Driver) Query(ctx context.Context, text string, k int) ([]docstore.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: result count must be positive, got %d", ErrInvalidArgument, k)
	}

	col, err := d.open(ctx)
	if err != nil {
		return nil, err
	}

	res, err := col.Query(ctx, text, k)
	if err != nil {
		return nil, err
	}
	d.log.Debug("query finished", "query", text, "results", len(res))

	return res, nil
}

func (d *Driver) Stats(ctx context.Context) (*Stats, error) {
	col, err := d.client.GetCollection(ctx, d.collection)
	if err != nil {
		return nil, err
	}

	total, err := col.Count(ctx)
	if err != nil {
		return nil, err
	}

	sample, err := col.Get(ctx, StatsSampleSize)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	files := make([]string, 0)
	for _, m := range sample {
		if _, ok := seen[m.FilePath]; ok {
			continue
		}
		seen[m.FilePath] = struct{}{}
		files = append(files, m.FilePath)
	}
	slices.Sort(files)

	return &Stats{
		Collection: d.collection,
		Total:      total,
		Sampled:    len(sample),
		Files:      files,
	}, nil
}

func (d *Driver) Collections(ctx context.Context) ([]string, error) {
	return d.client.ListCollections(ctx)
}

// open treats an empty collection like a missing one: there is nothing to search yet.
func (d *Driver) open(ctx context.Context) (docstore.Collection, error) {
	col, err := d.client.GetCollection(ctx, d.collection)
	if err != nil {
		return nil, err
	}

	n, err := col.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s is empty", docstore.ErrCollectionNotFound, d.collection)
	}

	return col, nil
}

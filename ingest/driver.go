package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/gamma-omg/rag-loader/docstore"
)

type Options struct {
	Collection string
	BatchSize  int
	// Append adds to an existing collection instead of recreating it.
	Append bool
	// KeepGoing submits the remaining batches after one fails.
	KeepGoing bool
	// Debounce merges file events while watching.
	Debounce time.Duration
}

// RunResult summarizes one ingestion run. Failures holds the files that
// could not be read or assembled; they did not stop the run.
type RunResult struct {
	FilesFound        int
	DocumentsCreated  int
	DocumentsIngested int
	CollectionCount   int
	Failures          []error
}

type Driver struct {
	log        *slog.Logger
	scanner    *Scanner
	reader     FileReader
	chunkifier *Chunkifier
	client     docstore.Client
	opts       Options
}

func NewDriver(log *slog.Logger, reader FileReader, chunkifier *Chunkifier, client docstore.Client, opts Options) (*Driver, error) {
	if opts.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", opts.BatchSize)
	}
	if opts.Collection == "" {
		return nil, errors.New("collection name is empty")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}

	return &Driver{
		log:        log,
		scanner:    NewScanner(log, reader),
		reader:     reader,
		chunkifier: chunkifier,
		client:     client,
		opts:       opts,
	}, nil
}

// EnsureRoot creates root when it does not exist yet and reports whether it did.
func EnsureRoot(root string) (bool, error) {
	_, err := os.Stat(root)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, &ScanError{Root: root, Err: err}
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return false, &ScanError{Root: root, Err: err}
	}

	return true, nil
}

func (d *Driver) Run(ctx context.Context, root string) (*RunResult, error) {
	files, err := d.scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &NoFilesError{Root: root, Exts: d.reader.Exts()}
	}

	d.log.Info(fmt.Sprintf("Found %d files to process", len(files)))

	docs, failures := d.Process(files)
	res := &RunResult{
		FilesFound:       len(files),
		DocumentsCreated: len(docs),
		Failures:         failures,
	}
	d.log.Info(fmt.Sprintf("Created %d document chunks", len(docs)), "failed_files", len(failures))

	col, err := d.openCollection(ctx)
	if err != nil {
		return res, err
	}

	res.DocumentsIngested, err = d.Deliver(ctx, col, Batches(docs, d.opts.BatchSize))
	if err != nil {
		return res, err
	}

	res.CollectionCount, err = col.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to count collection %s: %w", col.Name(), err)
	}
	d.log.Info(fmt.Sprintf("Total documents in collection: %d", res.CollectionCount))

	return res, nil
}

// Process reads, chunks and assembles every file. A file that fails is
// logged, reported in the returned errors and contributes no documents.
func (d *Driver) Process(files []FileDescriptor) ([]docstore.Document, []error) {
	var (
		docs     []docstore.Document
		failures []error
	)

	for i, f := range files {
		d.log.Info(fmt.Sprintf("Processing %d/%d: %s", i+1, len(files), f.Name))

		fileDocs, err := d.processFile(f)
		if err != nil {
			d.log.Error("failed to process file", "path", f.Path, "error", err)
			failures = append(failures, err)
			continue
		}

		docs = append(docs, fileDocs...)
	}

	return docs, failures
}

func (d *Driver) processFile(f FileDescriptor) ([]docstore.Document, error) {
	text, err := d.reader.ReadText(f.Path)
	if err != nil {
		return nil, err
	}
	if text == "" {
		d.log.Debug("skipping empty file", "path", f.Path)
		return nil, nil
	}

	return Assemble(f, d.chunkifier.Chunkify(text))
}

// Batches splits docs into groups of at most size documents.
func Batches(docs []docstore.Document, size int) [][]docstore.Document {
	return slices.Collect(slices.Chunk(docs, size))
}

// Deliver adds the batches in order and returns how many documents were
// accepted. A failed batch is reported as *IngestionError and is not retried.
func (d *Driver) Deliver(ctx context.Context, col docstore.Collection, batches [][]docstore.Document) (int, error) {
	var (
		ingested int
		errs     []error
	)

	for i, batch := range batches {
		if err := col.Add(ctx, batch); err != nil {
			ierr := &IngestionError{Batch: i, Batches: len(batches), Ingested: ingested, Err: err}
			if !d.opts.KeepGoing {
				return ingested, ierr
			}

			d.log.Error("batch failed", "error", ierr)
			errs = append(errs, ierr)
			continue
		}

		ingested += len(batch)
		d.log.Info(fmt.Sprintf("Added batch %d/%d", i+1, len(batches)))
	}

	return ingested, errors.Join(errs...)
}

func (d *Driver) openCollection(ctx context.Context) (docstore.Collection, error) {
	name := d.opts.Collection
	if !d.opts.Append {
		names, err := d.client.ListCollections(ctx)
		if err != nil {
			return nil, err
		}

		if slices.Contains(names, name) {
			d.log.Info("recreating collection", "collection", name)
			if err := d.client.DeleteCollection(ctx, name); err != nil {
				return nil, err
			}
		}
	}

	return d.client.GetOrCreateCollection(ctx, name)
}

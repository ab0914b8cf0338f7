package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gamma-omg/rag-loader/docstore"
)

// Watch keeps the collection in sync with root until ctx is cancelled.
// Every changed file has its chunks replaced, removed files are forgotten.
func (d *Driver) Watch(ctx context.Context, root string) error {
	root, err := resolveRoot(root)
	if err != nil {
		return err
	}

	col, err := d.client.GetOrCreateCollection(ctx, d.opts.Collection)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	pending := make(map[string]struct{})
	if err := d.watchTree(w, root, nil); err != nil {
		return err
	}

	d.log.Info("watching for changes", "root", root)

	var flush <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}

			if ev.Has(fsnotify.Create) {
				if info, err := os.Lstat(ev.Name); err == nil && info.IsDir() {
					if err := d.watchTree(w, ev.Name, pending); err != nil {
						d.log.Warn("failed to watch directory", "path", ev.Name, "error", err)
					}
				}
			}

			pending[ev.Name] = struct{}{}
			flush = time.After(d.opts.Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			d.log.Error("watch error", "error", err)
		case <-flush:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			flush = nil

			d.sync(ctx, col, root, paths)
		}
	}
}

// watchTree adds dir and its subdirectories to w. Files already present are
// queued in pending when it is not nil.
func (d *Driver) watchTree(w *fsnotify.Watcher, dir string, pending map[string]struct{}) error {
	return filepath.WalkDir(dir, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if e.IsDir() {
			return w.Add(path)
		}
		if pending != nil {
			pending[path] = struct{}{}
		}

		return nil
	})
}

func (d *Driver) sync(ctx context.Context, col docstore.Collection, root string, paths []string) {
	slices.Sort(paths)

	for _, path := range paths {
		if !d.reader.CanRead(path) {
			continue
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			d.log.Error("path outside of root", "path", path, "error", err)
			continue
		}
		rel = filepath.ToSlash(rel)

		info, err := os.Lstat(path)
		if err != nil || !info.Mode().IsRegular() {
			if err := col.Forget(ctx, rel); err != nil {
				d.log.Error("failed to forget file", "path", rel, "error", err)
				continue
			}
			d.log.Info("forgot file", "path", rel)
			continue
		}

		// a file that cannot be read keeps its previous chunks
		docs, err := d.processFile(FileDescriptor{
			Path:    path,
			Name:    info.Name(),
			Ext:     filepath.Ext(info.Name()),
			RelPath: rel,
		})
		if err != nil {
			d.log.Error("failed to process file", "path", path, "error", err)
			continue
		}

		if err := col.Forget(ctx, rel); err != nil {
			d.log.Error("failed to forget file", "path", rel, "error", err)
			continue
		}

		n, err := d.Deliver(ctx, col, Batches(docs, d.opts.BatchSize))
		if err != nil {
			d.log.Error("failed to ingest file", "path", rel, "error", err)
			continue
		}

		d.log.Info("re-ingested file", "path", rel, "documents", n)
	}
}

package docstore

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	_ "modernc.org/sqlite"
)

// Embedder turns texts into vectors of equal length.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS items (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	document   TEXT NOT NULL,
	file_path  TEXT NOT NULL,
	metadata   TEXT NOT NULL,
	embedding  BLOB NOT NULL,
	UNIQUE (collection, id)
);
CREATE INDEX IF NOT EXISTS items_file ON items(collection, file_path);
`

// EmbeddedClient keeps collections in a local SQLite file and ranks
// query matches by exact squared euclidean distance.
type EmbeddedClient struct {
	db  *sql.DB
	emb Embedder
}

func NewEmbeddedClient(ctx context.Context, path string, emb Embedder) (*EmbeddedClient, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize embedded database: %w", err)
	}

	return &EmbeddedClient{db: db, emb: emb}, nil
}

func (c *EmbeddedClient) GetOrCreateCollection(ctx context.Context, name string) (Collection, error) {
	_, err := c.db.ExecContext(ctx, "INSERT OR IGNORE INTO collections(name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection %s: %w", name, err)
	}

	return &SQLiteStore{db: c.db, emb: c.emb, name: name}, nil
}

func (c *EmbeddedClient) GetCollection(ctx context.Context, name string) (Collection, error) {
	ok, err := c.exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}

	return &SQLiteStore{db: c.db, emb: c.emb, name: name}, nil
}

func (c *EmbeddedClient) DeleteCollection(ctx context.Context, name string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "DELETE FROM collections WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE collection = ?", name); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}

	return tx.Commit()
}

func (c *EmbeddedClient) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT name FROM collections ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to list collections: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (c *EmbeddedClient) Close() error {
	return c.db.Close()
}

func (c *EmbeddedClient) exists(ctx context.Context, name string) (bool, error) {
	var n int
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM collections WHERE name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to look up collection %s: %w", name, err)
	}

	return n > 0, nil
}

type SQLiteStore struct {
	db   *sql.DB
	emb  Embedder
	name string
}

func (s *SQLiteStore) Name() string {
	return s.name
}

func (s *SQLiteStore) Add(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		texts = append(texts, d.Content)
	}

	vectors, err := s.emb.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed documents: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("embedder returned %d vectors for %d documents", len(vectors), len(docs))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO items
		(collection, id, document, file_path, metadata, embedding) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range docs {
		meta, err := json.Marshal(d.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata of %s: %w", d.ID, err)
		}

		_, err = stmt.ExecContext(ctx, s.name, d.ID, d.Content, d.Metadata.FilePath, string(meta), encodeVector(vectors[i]))
		if err != nil {
			return fmt.Errorf("failed to insert %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Forget(ctx context.Context, filePath string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE collection = ? AND file_path = ?", s.name, filePath)
	if err != nil {
		return fmt.Errorf("failed to forget doc %s: %w", filePath, err)
	}

	return nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items WHERE collection = ?", s.name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count collection %s: %w", s.name, err)
	}

	return n, nil
}

func (s *SQLiteStore) Get(ctx context.Context, limit int) ([]Metadata, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT metadata FROM items WHERE collection = ? ORDER BY seq LIMIT ?", s.name, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample collection %s: %w", s.name, err)
	}
	defer rows.Close()

	var out []Metadata
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to sample collection %s: %w", s.name, err)
		}

		var m Metadata
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (s *SQLiteStore) Query(ctx context.Context, text string, n int) ([]SearchResult, error) {
	vectors, err := s.emb.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, errors.New("embedder returned no vector for query")
	}
	query := vectors[0]

	rows, err := s.db.QueryContext(ctx,
		"SELECT document, metadata, embedding FROM items WHERE collection = ? ORDER BY seq", s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve texts: %w", err)
	}
	defer rows.Close()

	var res []SearchResult
	for rows.Next() {
		var (
			doc, raw string
			blob     []byte
		)
		if err := rows.Scan(&doc, &raw, &blob); err != nil {
			return nil, fmt.Errorf("failed to retrieve texts: %w", err)
		}

		dist, err := squaredL2(query, decodeVector(blob))
		if err != nil {
			return nil, err
		}

		var m Metadata
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}

		res = append(res, SearchResult{Text: doc, Metadata: m, Distance: dist})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to retrieve texts: %w", err)
	}

	slices.SortStableFunc(res, func(a, b SearchResult) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})

	return res[:min(n, len(res))], nil
}

func squaredL2(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimension mismatch: %d != %d", len(a), len(b))
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return sum, nil
}

func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}

	return buf
}

func decodeVector(buf []byte) []float32 {
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}

	return v
}

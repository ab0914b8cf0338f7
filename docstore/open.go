package docstore

import (
	"context"
	"fmt"
	"log/slog"
)

type Config struct {
	// RemoteAddr is host:port of a Chroma server. Empty selects the embedded store.
	RemoteAddr string
	// DBPath is the embedded store file.
	DBPath    string
	Embedding EmbeddingConfig
}

// Open connects to the remote server when one is configured and falls back
// to the embedded store otherwise.
func Open(ctx context.Context, log *slog.Logger, cfg Config) (Client, error) {
	ef, err := NewEmbeddingFunction(cfg.Embedding)
	if err != nil {
		return nil, err
	}

	if cfg.RemoteAddr != "" {
		log.Info("using remote http client", "addr", cfg.RemoteAddr)
		return NewChromaClient(ctx, cfg.RemoteAddr, ef)
	}

	log.Info("using embedded client", "path", cfg.DBPath)
	client, err := NewEmbeddedClient(ctx, cfg.DBPath, FuncEmbedder{EF: ef})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedded doc store: %w", err)
	}

	return client, nil
}

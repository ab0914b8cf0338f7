package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/amikos-tech/chroma-go/pkg/embeddings"
	ollama "github.com/amikos-tech/chroma-go/pkg/embeddings/ollama"
	openai "github.com/amikos-tech/chroma-go/pkg/embeddings/openai"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

type EmbeddingConfig struct {
	Provider string
	BaseURL  string
	Model    string
	APIKey   string
}

func NewEmbeddingFunction(cfg EmbeddingConfig) (embeddings.EmbeddingFunction, error) {
	switch cfg.Provider {
	case ProviderOllama, "":
		ef, err := ollama.NewOllamaEmbeddingFunction(
			ollama.WithBaseURL(cfg.BaseURL),
			ollama.WithModel(embeddings.EmbeddingModel(cfg.Model)))
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama embedding function: %w", err)
		}

		return ef, nil
	case ProviderOpenAI:
		ef, err := openai.NewOpenAIEmbeddingFunction(
			cfg.APIKey,
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithModel(openai.EmbeddingModel(cfg.Model)))
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI embedding function: %w", err)
		}

		return ef, nil
	}

	return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
}

// FuncEmbedder adapts a chroma embedding function to Embedder.
type FuncEmbedder struct {
	EF embeddings.EmbeddingFunction
}

func (e FuncEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	embs, err := e.EF.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, err
	}

	out := make([][]float32, 0, len(embs))
	for _, emb := range embs {
		if emb == nil {
			return nil, errors.New("embedding function returned an empty embedding")
		}
		out = append(out, emb.ContentAsFloat32())
	}

	return out, nil
}

package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/markdave123-py/Indexa/internal/core"
)

// GeminiEmbedder calls the Gemini embedding API, one chunk per request.
// The client is long-lived and safe to share across documents and batches.
type GeminiEmbedder struct {
	client    *genai.Client
	modelName string
	dim       int
}

func NewGeminiEmbedder(ctx context.Context, apiKey, modelName string, dim int) (*GeminiEmbedder, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = "text-embedding-004"
	}
	return &GeminiEmbedder{client: cl, modelName: modelName, dim: dim}, nil
}

func (g *GeminiEmbedder) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// EmbedText embeds a single chunk and validates the returned dimensionality
// against the configured value; the vector index rejects mismatched widths
// far less legibly.
func (g *GeminiEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.modelName)

	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini embed: %v", core.ErrEmbedding, err)
	}
	if resp.Embedding == nil {
		return nil, fmt.Errorf("%w: gemini embed: empty response", core.ErrEmbedding)
	}
	values := resp.Embedding.Values
	if g.dim > 0 && len(values) != g.dim {
		return nil, fmt.Errorf("%w: model %q returned %d dimensions, want %d",
			core.ErrEmbedding, g.modelName, len(values), g.dim)
	}
	return values, nil
}

var _ core.EmbeddingProvider = (*GeminiEmbedder)(nil)

package core

import "context"

// EmbeddingProvider turns one chunk of text into a fixed-dimension vector.
// One call per chunk; the pipeline never batches across chunks.
type EmbeddingProvider interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

package core

import "errors"

// Error taxonomy for the ingestion pipeline. Components wrap these with
// fmt.Errorf("...: %w", ...) so callers can classify with errors.Is.
var (
	// ErrUnsupportedFormat indicates a file extension outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtraction indicates malformed document content.
	ErrExtraction = errors.New("text extraction failed")

	// ErrEmbedding indicates a transport or service failure from the embedding API.
	ErrEmbedding = errors.New("embedding service failure")

	// ErrIndexWrite indicates a failed write to the vector index.
	ErrIndexWrite = errors.New("vector index write failed")

	// ErrObjectFetch indicates the source object could not be read.
	ErrObjectFetch = errors.New("object fetch failed")
)

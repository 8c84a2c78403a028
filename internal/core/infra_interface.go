package core

import (
	"context"

	"github.com/markdave123-py/Indexa/internal/models"
)

// ObjectClient defines interactions with S3 or any object storage.
// It’s abstract so you can replace AWS with MinIO, GCP, etc. easily.
type ObjectClient interface {
	GetFile(ctx context.Context, bucket, key string) ([]byte, error)
	UploadFile(ctx context.Context, bucket, key string, data []byte, contentType string) (url string, err error)
}

// VectorIndex abstracts the vector store. Upsert replaces any existing
// records sharing an id within the namespace and inserts the rest, so
// calling it twice with the same records converges to the same state.
type VectorIndex interface {
	Upsert(ctx context.Context, namespace string, records []models.VectorRecord) error
	Close() error
}

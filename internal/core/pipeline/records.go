package pipeline

import (
	"fmt"

	"github.com/markdave123-py/Indexa/internal/core/extract"
	"github.com/markdave123-py/Indexa/internal/models"
)

// previewRunes bounds the chunk text stored in record metadata.
const previewRunes = 1000

// VectorID derives the stable identifier for one chunk of one object.
// Re-processing the same object with the same chunking parameters yields
// byte-identical ids, which is what makes upserts idempotent.
func VectorID(bucket, key string, index int) string {
	return fmt.Sprintf("%s/%s_chunk_%d", bucket, key, index)
}

func buildRecord(bucket, key string, format extract.Format, index, total int, chunk string, values []float32) models.VectorRecord {
	return models.VectorRecord{
		ID:     VectorID(bucket, key, index),
		Values: values,
		Metadata: map[string]any{
			models.MetaSource:      fmt.Sprintf("s3://%s/%s", bucket, key),
			models.MetaChunkIndex:  index,
			models.MetaText:        truncateRunes(chunk, previewRunes),
			models.MetaFileType:    string(format),
			models.MetaTotalChunks: total,
		},
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

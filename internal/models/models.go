package models

// VectorRecord is the unit of storage in the vector index: a stable
// identifier, a fixed-dimension embedding, and descriptive metadata.
//
// The ID is derived as "{bucket}/{key}_chunk_{index}", so re-processing the
// same object overwrites the same records instead of duplicating them.
type VectorRecord struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata"`
}

// Metadata keys carried by every vector record.
const (
	MetaSource      = "source"       // s3://bucket/key locator
	MetaChunkIndex  = "chunk_index"  // zero-based position within the document
	MetaText        = "text"         // bounded preview of the chunk text
	MetaFileType    = "file_type"    // original extension, e.g. ".pdf"
	MetaTotalChunks = "total_chunks" // chunk count after blank windows are dropped
)

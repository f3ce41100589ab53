package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// timeLayout is RFC 3339 at second precision, the format used by the
// persisted chunk records.
const timeLayout = time.RFC3339

// ErrMissingContent reports a chunk record without the required content
// field. Loaders skip such records instead of failing the whole load.
var ErrMissingContent = errors.New("chunk record missing content field")

// ChunkRecord is the canonical on-disk form of a chunk: one JSON document
// per chunk, named <chunk_id>.json.
type ChunkRecord struct {
	Content  *string       `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkMetadata carries provenance for a persisted chunk.
type ChunkMetadata struct {
	Source    string `json:"source"`
	ChunkID   string `json:"chunk_id"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
	CreatedAt string `json:"created_at"`
}

// NewRecord converts a chunk into its persisted form.
func NewRecord(c Chunk) ChunkRecord {
	return ChunkRecord{
		Content: &c.Content,
		Metadata: ChunkMetadata{
			Source:    c.Source,
			ChunkID:   c.ID,
			StartChar: c.StartChar,
			EndChar:   c.EndChar,
			CreatedAt: c.CreatedAt.UTC().Truncate(time.Second).Format(timeLayout),
		},
	}
}

// ParseRecord decodes a persisted chunk record. A record without a content
// field is rejected with ErrMissingContent; a missing or unparsable
// timestamp is tolerated and left as the zero time.
func ParseRecord(data []byte) (Chunk, error) {
	var rec ChunkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Chunk{}, err
	}
	if rec.Content == nil {
		return Chunk{}, ErrMissingContent
	}
	created, _ := time.Parse(timeLayout, rec.Metadata.CreatedAt)
	return Chunk{
		ID:        rec.Metadata.ChunkID,
		Source:    rec.Metadata.Source,
		Content:   *rec.Content,
		StartChar: rec.Metadata.StartChar,
		EndChar:   rec.Metadata.EndChar,
		CreatedAt: created,
	}, nil
}

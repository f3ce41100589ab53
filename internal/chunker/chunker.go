package chunker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"ragassist/internal/domain"
)

// ErrInvalidGeometry reports a chunk size / overlap combination that would
// produce a non-advancing window.
var ErrInvalidGeometry = fmt.Errorf("chunker: overlap must satisfy 0 <= overlap < chunk size, chunk size must be positive")

// WindowChunker splits text into fixed-size character windows with overlap.
type WindowChunker struct {
	chunkSize int
	overlap   int
	now       func() time.Time
}

// NewWindowChunker validates the window geometry up front so that Chunk can
// never loop without advancing.
func NewWindowChunker(chunkSize, overlap int) (*WindowChunker, error) {
	if chunkSize <= 0 || overlap < 0 || overlap >= chunkSize {
		return nil, ErrInvalidGeometry
	}
	return &WindowChunker{chunkSize: chunkSize, overlap: overlap, now: time.Now}, nil
}

// Chunk slides a window over text and emits one chunk per position. The
// window counts runes, not bytes, so a boundary never splits a multi-byte
// character and offsets match the character positions in the source. Each
// chunk spans [pos, min(pos+chunkSize, len(runes))) and the next window
// starts overlap runes before the previous end. Empty text yields no
// chunks. Chunk IDs are <hash>_<index> where the hash covers the entire
// source text, so identical input always produces identical IDs regardless
// of where the file lives.
func (c *WindowChunker) Chunk(text, sourcePath string) []domain.Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	hash := contentHash(text)
	created := c.now().UTC().Truncate(time.Second)

	var chunks []domain.Chunk
	pos := 0
	for idx := 0; pos < len(runes); idx++ {
		end := pos + c.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, domain.Chunk{
			ID:        hash + "_" + strconv.Itoa(idx),
			Source:    sourcePath,
			Content:   string(runes[pos:end]),
			StartChar: pos,
			EndChar:   end,
			CreatedAt: created,
		})
		if end == len(runes) {
			break
		}
		pos = end - c.overlap
	}
	return chunks
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:12]
}

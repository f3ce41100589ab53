package domain

import "time"

// Chunk is an overlapping, content-addressed segment of a source document.
// Its ID is the content hash of the whole source text joined with the
// zero-based emission index, so re-chunking identical input yields
// identical IDs.
type Chunk struct {
	ID        string
	Source    string
	Content   string
	StartChar int
	EndChar   int
	CreatedAt time.Time
}

// SearchResult is a chunk matched by a query together with its
// cosine-similarity score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// Chunker splits a source text into chunks suitable for retrieval indexing.
type Chunker interface {
	Chunk(text, sourcePath string) []Chunk
}

// Searcher answers ranked similarity queries over an indexed corpus.
type Searcher interface {
	Search(query string, topK int) []SearchResult
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) string
}

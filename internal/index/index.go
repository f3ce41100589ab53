// Package index holds the in-memory similarity index. Every query scores
// the full corpus with brute-force cosine similarity; there is no inverted
// index or approximate structure, which bounds this to small and moderate
// in-memory corpora.
package index

import (
	"sort"

	"ragassist/internal/domain"
	"ragassist/internal/vectorizer"
)

// Index is a read-only snapshot of a chunk corpus: a fitted vectorizer plus
// one cached term vector per chunk. It is safe for concurrent reads and has
// no mutation API; re-indexing means building a new Index.
type Index struct {
	vect    *vectorizer.Vectorizer
	chunks  []domain.Chunk
	vectors []vectorizer.TermVector
}

// Build fits a vectorizer over all chunk contents and eagerly caches one
// vector per chunk, so query cost does not include re-vectorizing the
// corpus.
func Build(chunks []domain.Chunk) *Index {
	docs := make([]string, len(chunks))
	for i, ch := range chunks {
		docs[i] = ch.Content
	}
	vect := vectorizer.New()
	vect.Fit(docs)

	vectors := make([]vectorizer.TermVector, len(chunks))
	for i, doc := range docs {
		vectors[i] = vect.Vector(doc)
	}
	return &Index{vect: vect, chunks: chunks, vectors: vectors}
}

// Size returns the number of indexed chunks.
func (ix *Index) Size() int { return len(ix.chunks) }

// Search ranks every indexed chunk against the query by cosine similarity
// and returns up to topK results, best first. Equal scores keep the
// original chunk insertion order. Asking for more results than the corpus
// holds simply returns everything.
func (ix *Index) Search(query string, topK int) []domain.SearchResult {
	qv := ix.vect.Vector(query)
	scores := make([]float64, len(ix.vectors))
	for i, cv := range ix.vectors {
		scores[i] = vectorizer.Cosine(qv, cv)
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(order) {
		topK = len(order)
	}
	results := make([]domain.SearchResult, 0, topK)
	for _, i := range order[:topK] {
		results = append(results, domain.SearchResult{Chunk: ix.chunks[i], Score: scores[i]})
	}
	return results
}

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragassist/internal/domain"
)

func corpus(contents ...string) []domain.Chunk {
	chunks := make([]domain.Chunk, len(contents))
	for i, c := range contents {
		chunks[i] = domain.Chunk{ID: "c_" + string(rune('a'+i)), Content: c}
	}
	return chunks
}

func TestSearch_RanksSharedVocabularyFirst(t *testing.T) {
	ix := Build(corpus("apple banana", "banana cherry", "durian"))

	results := ix.Search("banana", 3)
	require.Len(t, results, 3)

	// A and B both contain the query term, C does not
	assert.Equal(t, "apple banana", results[0].Chunk.Content)
	assert.Equal(t, "banana cherry", results[1].Chunk.Content)
	assert.Equal(t, "durian", results[2].Chunk.Content)
	assert.Greater(t, results[0].Score, results[2].Score)
	assert.Greater(t, results[1].Score, results[2].Score)

	// equal term frequencies and token counts score identically,
	// and insertion order breaks the tie
	assert.InDelta(t, results[0].Score, results[1].Score, 1e-12)
}

func TestSearch_ScoresBoundedAndSorted(t *testing.T) {
	ix := Build(corpus(
		"gophers build fast servers",
		"servers serve requests",
		"gophers love servers and requests",
		"completely unrelated text about gardening",
	))
	results := ix.Search("gophers servers", 4)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, r.Score, results[i-1].Score)
		}
	}
}

func TestSearch_KLargerThanCorpus(t *testing.T) {
	ix := Build(corpus("one fish", "two fish"))
	results := ix.Search("fish", 10)
	assert.Len(t, results, 2)
}

func TestSearch_KLimitsResults(t *testing.T) {
	ix := Build(corpus("alpha", "bravo", "charlie", "delta"))
	assert.Len(t, ix.Search("alpha", 2), 2)
	assert.Empty(t, ix.Search("alpha", 0))
}

func TestSearch_TieBreakKeepsInsertionOrder(t *testing.T) {
	ix := Build(corpus("same words here", "same words here", "same words here"))
	results := ix.Search("words", 3)
	require.Len(t, results, 3)
	assert.Equal(t, "c_a", results[0].Chunk.ID)
	assert.Equal(t, "c_b", results[1].Chunk.ID)
	assert.Equal(t, "c_c", results[2].Chunk.ID)
}

func TestSearch_NoSharedVocabularyScoresZero(t *testing.T) {
	ix := Build(corpus("apple banana", "banana cherry"))
	results := ix.Search("zeppelin", 2)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Zero(t, r.Score)
	}
}

func TestBuild_Size(t *testing.T) {
	assert.Equal(t, 3, Build(corpus("one", "two", "three")).Size())
	assert.Zero(t, Build(nil).Size())
}

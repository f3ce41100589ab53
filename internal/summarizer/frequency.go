package summarizer

import (
	"math"
	"sort"
	"strings"

	"ragassist/internal/vectorizer"
)

// FrequencySummarizer ranks sentences by normalized token frequency and
// keeps the best ones in their original order. It shares the retrieval
// tokenizer so stop words are filtered the same way queries are.
type FrequencySummarizer struct {
	vect *vectorizer.Vectorizer
}

// NewFrequencySummarizer creates a frequency-based sentence ranker.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{vect: vectorizer.New()}
}

// Summarize returns up to maxSentences of the highest-scoring sentences.
// Text without sentence punctuation comes back trimmed as-is.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = 5
	}
	sentences := vectorizer.SplitSentences(text)
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}

	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range s.vect.Tokenize(sent) {
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}

	type ranked struct {
		idx   int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, sent := range sentences {
		tokens := s.vect.Tokenize(sent)
		score := 0.0
		for _, tok := range tokens {
			score += freq[tok]
		}
		// dampen the long-sentence advantage
		if len(tokens) > 0 {
			score /= math.Sqrt(float64(len(tokens)))
		}
		scores[i] = ranked{i, score}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(out, " ")
}

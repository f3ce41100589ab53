package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_LimitsSentenceCount(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Gophers dig tunnels. Gophers eat roots. Birds fly south. " +
		"Gophers are rodents. Fish swim upstream. Gophers avoid cats."
	summary := s.Summarize(text, 2)
	assert.NotEmpty(t, summary)
	assert.LessOrEqual(t, strings.Count(summary, "."), 2)
}

func TestSummarize_PrefersFrequentTerms(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Gophers dig tunnels. Gophers eat roots. Birds fly south. Gophers are rodents."
	summary := s.Summarize(text, 1)
	assert.Contains(t, strings.ToLower(summary), "gophers")
}

func TestSummarize_KeepsOriginalSentenceOrder(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Alpha topic sentence one. Filler unrelated aside. Alpha topic sentence two."
	summary := s.Summarize(text, 2)
	first := strings.Index(summary, "one")
	second := strings.Index(summary, "two")
	if first >= 0 && second >= 0 {
		assert.Less(t, first, second)
	}
}

func TestSummarize_TextWithoutSentencePunctuation(t *testing.T) {
	s := NewFrequencySummarizer()
	assert.Equal(t, "just a fragment", s.Summarize("  just a fragment  ", 3))
}

func TestSummarize_ZeroMaxFallsBackToDefault(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "One. Two. Three. Four. Five. Six. Seven."
	summary := s.Summarize(text, 0)
	assert.LessOrEqual(t, strings.Count(summary, "."), 5)
}

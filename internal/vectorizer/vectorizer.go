package vectorizer

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// TermVector is a sparse TF-IDF weight vector; only nonzero terms are kept.
type TermVector map[string]float64

// Vectorizer turns text into comparable sparse TF-IDF vectors. Fit must be
// called over the corpus before Vector produces meaningful weights; after
// that the document-frequency table is never mutated.
type Vectorizer struct {
	docCount     int
	df           map[string]int
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// New creates an unfitted vectorizer.
func New() *Vectorizer {
	return &Vectorizer{
		df:           make(map[string]int),
		tokenPattern: regexp.MustCompile(`[^\p{L}\p{N}_]+`),
		stopwords:    defaultStopwords(),
	}
}

// Fit records the corpus size and, for each document, increments the
// document frequency of every distinct token. Token multiplicity within a
// document does not matter here.
func (v *Vectorizer) Fit(docs []string) {
	v.docCount = len(docs)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range v.Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			v.df[tok]++
		}
	}
}

// DocCount returns the number of documents the vectorizer was fitted over.
func (v *Vectorizer) DocCount() int { return v.docCount }

// Vector computes the sparse TF-IDF vector of doc. The smoothed IDF
// ln((N+1)/(df+1))+1 stays positive and is defined even for terms the
// corpus never saw, so queries with unseen vocabulary still vectorize.
func (v *Vectorizer) Vector(doc string) TermVector {
	tokens := v.Tokenize(doc)
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	denom := float64(len(tokens))
	if denom < 1 {
		denom = 1
	}
	vec := make(TermVector, len(counts))
	for tok, c := range counts {
		tf := float64(c) / denom
		idf := math.Log(float64(v.docCount+1)/float64(v.df[tok]+1)) + 1
		vec[tok] = tf * idf
	}
	return vec
}

// Cosine computes the cosine similarity of two sparse vectors. The dot
// product only walks the smaller vector; norms cover each vector's own
// terms. Either vector having zero norm yields 0 rather than an error.
func Cosine(a, b TermVector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	dot := 0.0
	for tok, wa := range a {
		if wb, ok := b[tok]; ok {
			dot += wa * wb
		}
	}
	mag := norm(a) * norm(b)
	if mag == 0 {
		return 0
	}
	return dot / mag
}

func norm(v TermVector) float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

var sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// SplitSentences returns the sentence-like segments of text, terminal
// punctuation included. Text without sentence punctuation yields nil.
func SplitSentences(text string) []string {
	return sentenceRe.FindAllString(text, -1)
}

// Tokenize lowercases the text, treats every non-word character as
// whitespace, and drops stop words and single-character tokens.
func (v *Vectorizer) Tokenize(text string) []string {
	cleaned := v.tokenPattern.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)
	out := fields[:0]
	for _, tok := range fields {
		if _, isStop := v.stopwords[tok]; isStop {
			continue
		}
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "because", "as", "what", "when", "where", "how",
		"which", "who", "whom", "this", "that", "these", "those", "again", "about", "for", "is",
		"of", "while", "during", "to", "from", "in", "out", "on", "off", "over", "under", "through",
		"no", "not", "only", "own", "same", "so", "than", "too", "very", "can", "will", "just", "now",
		"with", "by", "be", "been", "being", "am", "are", "was", "were",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

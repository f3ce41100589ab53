package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"ragassist/internal/domain"
	"ragassist/internal/index"
)

// Sentinel errors for the session lifecycle.
var (
	// ErrEmptyCorpus means the chunk directory held zero usable records.
	// A session in this condition is Failed, never "ready with no data".
	ErrEmptyCorpus = errors.New("session: no usable chunks in corpus")
	// ErrNotReady means Setup has not completed successfully.
	ErrNotReady = errors.New("session: not initialised")
)

// State tracks the session lifecycle. Ready is terminal: there is no
// incremental re-index, only discarding the session and building a new one.
type State int

const (
	Uninitialized State = iota
	Ready
	Failed
)

// Answer texts for the degenerate Ask outcomes.
const (
	msgNotReady    = "Assistant not initialised."
	msgNoRelevance = "No relevant information found."
)

// Session loads persisted chunks, builds the similarity index once, and
// answers free-text questions against it.
type Session struct {
	dir        string
	logger     *log.Logger
	summarizer domain.Summarizer

	state  State
	chunks []domain.Chunk
	index  domain.Searcher
}

// New creates an uninitialized session over a chunk directory. The
// directory is injected explicitly; the session never goes looking for
// configuration on its own. summarizer may be nil if no corpus summary is
// wanted.
func New(dir string, summarizer domain.Summarizer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{dir: dir, logger: logger, summarizer: summarizer}
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Len returns the number of chunks in the loaded corpus.
func (s *Session) Len() int { return len(s.chunks) }

// Load reads every *.json chunk record in the session directory. Records
// that fail to parse or lack the content field are skipped with a warning;
// an unreadable directory aborts the load.
func (s *Session) Load() ([]domain.Chunk, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading chunk directory: %w", err)
	}
	var chunks []domain.Chunk
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable chunk record", "file", entry.Name(), "err", err)
			continue
		}
		ch, err := domain.ParseRecord(data)
		if err != nil {
			s.logger.Warn("skipping malformed chunk record", "file", entry.Name(), "err", err)
			continue
		}
		if ch.ID == "" {
			ch.ID = strings.TrimSuffix(entry.Name(), ".json")
		}
		chunks = append(chunks, ch)
	}
	return chunks, nil
}

// Setup loads the corpus and builds the index. Individual malformed records
// never fail setup, but zero usable chunks does: that is ErrEmptyCorpus and
// the session ends up Failed.
func (s *Session) Setup() error {
	chunks, err := s.Load()
	if err != nil {
		s.state = Failed
		return err
	}
	if len(chunks) == 0 {
		s.state = Failed
		return fmt.Errorf("%w (dir %s)", ErrEmptyCorpus, s.dir)
	}
	s.chunks = chunks
	s.index = index.Build(chunks)
	s.state = Ready
	s.logger.Info("corpus indexed", "chunks", len(chunks), "dir", s.dir)
	return nil
}

// Query runs a ranked similarity search, dropping zero-score results.
// Returns ErrNotReady when Setup has not succeeded.
func (s *Session) Query(question string, topK int) ([]domain.SearchResult, error) {
	if s.state != Ready {
		return nil, ErrNotReady
	}
	results := s.index.Search(question, topK)
	relevant := results[:0]
	for _, r := range results {
		if r.Score > 0 {
			relevant = append(relevant, r)
		}
	}
	return relevant, nil
}

// Ask answers a question with the formatted top-k chunks. The degenerate
// cases come back as explicit result strings, never as a panic: a session
// that was never set up answers "not initialised", and a query sharing no
// vocabulary with the corpus answers "no relevant information".
func (s *Session) Ask(question string, topK int) string {
	results, err := s.Query(question, topK)
	if err != nil {
		return msgNotReady
	}
	if len(results) == 0 {
		return msgNoRelevance
	}
	var b strings.Builder
	b.WriteString("Based on the indexed chunks:\n\n")
	for _, r := range results {
		source := filepath.Base(r.Chunk.Source)
		if source == "." || source == "" {
			source = r.Chunk.ID
		}
		fmt.Fprintf(&b, "From %s (similarity %.2f):\n%s\n\n", source, r.Score, strings.TrimSpace(r.Chunk.Content))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Summary produces a short corpus overview for display, or "" when no
// summarizer was supplied or the session is not Ready.
func (s *Session) Summary(maxSentences int) string {
	if s.summarizer == nil || s.state != Ready {
		return ""
	}
	var b strings.Builder
	for _, ch := range s.chunks {
		b.WriteString(ch.Content)
		b.WriteString("\n")
	}
	return s.summarizer.Summarize(b.String(), maxSentences)
}

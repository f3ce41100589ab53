package chunker

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"ragassist/internal/domain"
)

// Writer persists chunks as one JSON record per chunk, named after the
// chunk ID. In append mode an existing record with the same ID is left
// untouched, which makes re-running the chunker over unchanged sources
// cheap and safe.
type Writer struct {
	dir    string
	append bool
	logger *log.Logger
}

// NewWriter creates a writer targeting dir, creating it if necessary.
func NewWriter(dir string, appendMode bool, logger *log.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Writer{dir: dir, append: appendMode, logger: logger}, nil
}

// Write stores each chunk and returns the number of records actually
// written. Skipped records (append mode, ID already present) do not count.
func (w *Writer) Write(chunks []domain.Chunk) (int, error) {
	written := 0
	for _, ch := range chunks {
		path := filepath.Join(w.dir, ch.ID+".json")
		if w.append {
			if _, err := os.Stat(path); err == nil {
				w.logger.Debug("skipping existing chunk", "id", ch.ID)
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, err
			}
		}
		data, err := json.MarshalIndent(domain.NewRecord(ch), "", "  ")
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, err
		}
		w.logger.Debug("wrote chunk", "id", ch.ID, "size", ch.EndChar-ch.StartChar)
		written++
	}
	return written, nil
}

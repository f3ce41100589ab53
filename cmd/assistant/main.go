package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"ragassist/internal/config"
	"ragassist/internal/session"
	"ragassist/internal/summarizer"
	"ragassist/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   string
		chunksDir string
		topK      int
		plain     bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
	flag.StringVar(&chunksDir, "chunks-dir", "", "Directory with chunk records (default from config)")
	flag.IntVar(&topK, "top-k", 0, "Number of results per query (default from config)")
	flag.BoolVar(&plain, "plain", false, "Plain line-based loop instead of the TUI")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if chunksDir == "" {
		chunksDir = cfg.Retrieval.ChunksDir
	}
	if topK <= 0 {
		topK = cfg.Retrieval.TopK
	}

	sess := session.New(chunksDir, summarizer.NewFrequencySummarizer(), logger)
	if err := sess.Setup(); err != nil {
		logger.Error("setup failed", "dir", chunksDir, "err", err)
		os.Exit(1)
	}
	summary := sess.Summary(cfg.Summarizer.MaxSentences)

	if plain {
		runPlainLoop(sess, topK)
		return
	}

	m := tui.New(sess, summary, topK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		logger.Fatal("tui failed", "err", err)
	}
}

// runPlainLoop reads one question per line until EOF or an exit keyword.
func runPlainLoop(sess *session.Session, topK int) {
	fmt.Println("Assistant ready. Type a question, or 'exit'.")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("\nQuestion> ")
		if !scanner.Scan() {
			break
		}
		q := strings.TrimSpace(scanner.Text())
		if q == "" {
			continue
		}
		if low := strings.ToLower(q); low == "exit" || low == "quit" {
			break
		}
		fmt.Println("\n" + sess.Ask(q, topK))
	}
	fmt.Println("Goodbye.")
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"ragassist/internal/chunker"
	"ragassist/internal/config"
	"ragassist/internal/domain"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   string
		inputFile string
		outputDir string
		chunkSize int
		overlap   int
		appendSet bool
		verbose   bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
	flag.StringVar(&inputFile, "input", "", "Path to source file (required)")
	flag.StringVar(&outputDir, "output", "", "Directory to store chunk records (default from config)")
	flag.IntVar(&chunkSize, "chunk-size", 0, "Chunk size in characters (default from config)")
	flag.IntVar(&overlap, "overlap", -1, "Overlap size in characters (default from config)")
	flag.BoolVar(&appendSet, "append", false, "Skip chunks whose records already exist instead of overwriting")
	flag.BoolVar(&verbose, "verbose", false, "Verbose output")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if inputFile == "" {
		fmt.Println("Usage: chunker -input file.txt [-output dir] [-chunk-size n] [-overlap n] [-append]")
		os.Exit(1)
	}

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
	if outputDir == "" {
		outputDir = cfg.Retrieval.ChunksDir
	}
	if chunkSize == 0 {
		chunkSize = cfg.Chunker.ChunkSize
	}
	if overlap < 0 {
		overlap = cfg.Chunker.Overlap
	}
	if !appendSet {
		appendSet = cfg.Chunker.Append
	}

	var ch domain.Chunker
	ch, err = chunker.NewWindowChunker(chunkSize, overlap)
	if err != nil {
		logger.Fatal("invalid chunker configuration", "chunk_size", chunkSize, "overlap", overlap, "err", err)
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		logger.Fatal("failed to read source file", "file", inputFile, "err", err)
	}

	chunks := ch.Chunk(string(data), inputFile)
	writer, err := chunker.NewWriter(outputDir, appendSet, logger)
	if err != nil {
		logger.Fatal("failed to prepare output directory", "dir", outputDir, "err", err)
	}
	written, err := writer.Write(chunks)
	if err != nil {
		logger.Fatal("failed to write chunk records", "err", err)
	}
	fmt.Printf("%d/%d chunks written to %s\n", written, len(chunks), outputDir)
}

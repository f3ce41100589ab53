package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ChunkerConfig configures how source files are split into chunks.
type ChunkerConfig struct {
	ChunkSize int  `yaml:"chunk_size"`
	Overlap   int  `yaml:"overlap"`
	Append    bool `yaml:"append"`
}

// RetrievalConfig configures where chunks live and how many results a
// query returns.
type RetrievalConfig struct {
	ChunksDir string `yaml:"chunks_dir"`
	TopK      int    `yaml:"top_k"`
}

// SummarizerConfig configures the corpus summary shown at startup.
type SummarizerConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Chunker    ChunkerConfig    `yaml:"chunker"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/ragassist/config.yaml.
// If neither exists, it writes defaults to ~/.config/ragassist/config.yaml
// and returns them. The CHUNKS_DIR environment variable, when set, overrides
// the chunk directory from any source.
func LoadDefault() (*AppConfig, string, error) {
	cfg, path, err := loadDefault()
	if err != nil {
		return nil, "", err
	}
	if dir := os.Getenv("CHUNKS_DIR"); dir != "" {
		cfg.Retrieval.ChunksDir = dir
	}
	return cfg, path, nil
}

func loadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ragassist", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Chunker:    ChunkerConfig{ChunkSize: 2000, Overlap: 200},
		Retrieval:  RetrievalConfig{ChunksDir: "./outputs/chunks", TopK: 3},
		Summarizer: SummarizerConfig{MaxSentences: 5},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Chunker.ChunkSize == 0 {
		cfg.Chunker.ChunkSize = 2000
	}
	// overlap 0 is legal, so it gets no default; bad geometry is rejected
	// by the chunker itself
	if cfg.Retrieval.ChunksDir == "" {
		cfg.Retrieval.ChunksDir = "./outputs/chunks"
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Summarizer.MaxSentences == 0 {
		cfg.Summarizer.MaxSentences = 5
	}
}

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gamma-omg/rag-loader/docstore"
	"github.com/gamma-omg/rag-loader/query"
	"gopkg.in/yaml.v3"
)

type Config struct {
	RemoteDB          string `yaml:"remote_db"`
	DataDir           string `yaml:"data_dir"`
	DBPath            string `yaml:"db_path"`
	OpenAIURL         string `yaml:"openai_url"`
	OpenAIKey         string `yaml:"openai_api_key"`
	EmbeddingProvider string `yaml:"embedding_provider"`
	EmbeddingModel    string `yaml:"embedding_model"`
	CollectionName    string `yaml:"collection_name"`
	BatchSize         int    `yaml:"batch_size"`
	Append            bool   `yaml:"append"`
	ChunkSize         int    `yaml:"chunk_size"`
	ChunkOverlap      int    `yaml:"chunk_overlap"`
	Results           int    `yaml:"results"`
	LogFile           string `yaml:"log"`
	LogLevel          string `yaml:"log_level"`
	MergeEventsMs     int    `yaml:"write_debounce_ms"`
}

// ConfigError lists every setting that is missing or malformed.
type ConfigError struct {
	Missing []string
	Invalid []string
}

func (e *ConfigError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required settings: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid settings: "+strings.Join(e.Invalid, "; "))
	}

	return strings.Join(parts, "; ")
}

func (e *ConfigError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

func Default() *Config {
	return &Config{
		EmbeddingProvider: docstore.ProviderOllama,
		EmbeddingModel:    "nomic-embed-text",
		CollectionName:    "default",
		BatchSize:         100,
		ChunkSize:         1000,
		ChunkOverlap:      200,
		Results:           query.DefaultResults,
		LogLevel:          "info",
		MergeEventsMs:     500,
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// cfgPath and finally the process environment.
func Load(cfgPath string) (*Config, error) {
	return load(cfgPath, os.LookupEnv)
}

func load(cfgPath string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if cfgPath != "" {
		if err := readFile(cfgPath, cfg); err != nil {
			return nil, err
		}
	}

	cerr := &ConfigError{}
	applyEnv(cfg, lookup, cerr)
	if !cerr.empty() {
		return nil, cerr
	}

	if cfg.DBPath == "" {
		dir := cfg.DataDir
		if dir == "" {
			dir = "data"
		}
		cfg.DBPath = filepath.Join(dir, "chroma_db", "collections.db")
	}

	return cfg, nil
}

func readFile(cfgPath string, cfg *Config) error {
	cfgFile, err := os.Open(cfgPath)
	if err != nil {
		return fmt.Errorf("unable to open config file: %w", err)
	}
	defer cfgFile.Close()

	dec := yaml.NewDecoder(cfgFile)
	err = dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool), cerr *ConfigError) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}

		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("%s=%q is not an integer", key, v))
			return
		}
		*dst = n
	}
	flag := func(key string, dst *bool) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}

		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("%s=%q is not a boolean", key, v))
			return
		}
		*dst = b
	}

	str("REMOTE_DB", &cfg.RemoteDB)
	str("DATA_DIR", &cfg.DataDir)
	str("DB_PATH", &cfg.DBPath)
	str("OPENAI_URL", &cfg.OpenAIURL)
	str("OPENAI_API_KEY", &cfg.OpenAIKey)
	str("EMBEDDING_PROVIDER", &cfg.EmbeddingProvider)
	str("EMBEDDING_MODEL", &cfg.EmbeddingModel)
	str("COLLECTION_NAME", &cfg.CollectionName)
	str("LOG_FILE", &cfg.LogFile)
	str("LOG_LEVEL", &cfg.LogLevel)
	num("BATCH_SIZE", &cfg.BatchSize)
	num("CHUNK_SIZE", &cfg.ChunkSize)
	// CHUNK_OVERLAY is the historical name of CHUNK_OVERLAP
	num("CHUNK_OVERLAY", &cfg.ChunkOverlap)
	num("CHUNK_OVERLAP", &cfg.ChunkOverlap)
	num("RESULTS", &cfg.Results)
	num("WATCH_DEBOUNCE_MS", &cfg.MergeEventsMs)
	flag("APPEND", &cfg.Append)
}

// ValidateIngest checks the settings needed to build a collection.
func (c *Config) ValidateIngest() error {
	cerr := c.validate()
	if c.DataDir == "" {
		cerr.Missing = append([]string{"DATA_DIR"}, cerr.Missing...)
	}
	if c.BatchSize <= 0 {
		cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("BATCH_SIZE must be positive, got %d", c.BatchSize))
	}
	if c.MergeEventsMs < 0 {
		cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("WATCH_DEBOUNCE_MS must not be negative, got %d", c.MergeEventsMs))
	}

	if cerr.empty() {
		return nil
	}
	return cerr
}

// ValidateQuery checks the settings needed to search a collection.
func (c *Config) ValidateQuery() error {
	cerr := c.validate()
	if c.Results <= 0 {
		cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("RESULTS must be positive, got %d", c.Results))
	}

	if cerr.empty() {
		return nil
	}
	return cerr
}

func (c *Config) validate() *ConfigError {
	cerr := &ConfigError{}
	if c.OpenAIURL == "" {
		cerr.Missing = append(cerr.Missing, "OPENAI_URL")
	}
	if c.CollectionName == "" {
		cerr.Missing = append(cerr.Missing, "COLLECTION_NAME")
	}

	switch c.EmbeddingProvider {
	case docstore.ProviderOllama:
	case docstore.ProviderOpenAI:
		if c.OpenAIKey == "" {
			cerr.Missing = append(cerr.Missing, "OPENAI_API_KEY")
		}
	default:
		cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("EMBEDDING_PROVIDER %q is not one of ollama, openai", c.EmbeddingProvider))
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		cerr.Invalid = append(cerr.Invalid, err.Error())
	}

	return cerr
}

func (c *Config) Store() docstore.Config {
	return docstore.Config{
		RemoteAddr: c.RemoteDB,
		DBPath:     c.DBPath,
		Embedding: docstore.EmbeddingConfig{
			Provider: c.EmbeddingProvider,
			BaseURL:  c.OpenAIURL,
			Model:    c.EmbeddingModel,
			APIKey:   c.OpenAIKey,
		},
	}
}

// LogValue keeps the API key out of the logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("remote_db", c.RemoteDB),
		slog.String("data_dir", c.DataDir),
		slog.String("db_path", c.DBPath),
		slog.String("openai_url", c.OpenAIURL),
		slog.String("embedding_provider", c.EmbeddingProvider),
		slog.String("embedding_model", c.EmbeddingModel),
		slog.String("collection", c.CollectionName),
		slog.Int("batch_size", c.BatchSize),
		slog.Bool("append", c.Append),
		slog.Int("chunk_size", c.ChunkSize),
		slog.Int("chunk_overlap", c.ChunkOverlap),
	)
}

// NewLogger writes JSON to LogFile when set and text to stderr otherwise.
// The returned closer releases the log file.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), io.NopCloser(os.Stderr), nil
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(logFile, opts)), logFile, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", s)
	}

	return level, nil
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"

	BackendChromem  = "chromem"
	BackendPGVector = "pgvector"
)

const (
	defaultChatModel      = "gpt-4o"
	defaultEmbeddingModel = "text-embedding-3-small"
	defaultImageModel     = "dall-e-3"
	defaultImageSize      = "1024x1024"
	defaultImageQuality   = "standard"
	defaultOpenAIBaseURL  = "https://api.openai.com/v1"
	defaultOllamaBaseURL  = "http://localhost:11434"
	defaultDBPath         = "./chromemdb"
	defaultCollection     = "story_knowledge_base"
	defaultNumChunks      = 10
	defaultSearchLimit    = 3
	defaultChunkSize      = 1000
	defaultChunkOverlap   = 200
	defaultMetricsJob     = "story-rag"
	defaultLogLevel       = "debug"
)

type Config struct {
	ChatLLM        LLMConfig      `yaml:"chat_llm"`
	EmbedLLM       LLMConfig      `yaml:"embed_llm"`
	Image          ImageConfig    `yaml:"image"`
	RAG            RAGConfig      `yaml:"rag"`
	Database       DatabaseConfig `yaml:"database"`
	Metrics        MetricsConfig  `yaml:"metrics"`
	LogLevel       string         `yaml:"log_level"`
	RequestTimeout time.Duration  `yaml:"request_timeout"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	Key      string `yaml:"key"`
	Model    string `yaml:"model"`
}

type ImageConfig struct {
	BaseURL     string `yaml:"base_url"`
	Key         string `yaml:"key"`
	Model       string `yaml:"model"`
	Size        string `yaml:"size"`
	Quality     string `yaml:"quality"`
	StyleSuffix string `yaml:"style_suffix"`
}

type RAGConfig struct {
	Backend       string `yaml:"backend"`
	DBPath        string `yaml:"db_path"`
	Collection    string `yaml:"collection"`
	InMemory      bool   `yaml:"in_memory"`
	EncryptionKey string `yaml:"encryption_key"`
	VectorDim     int    `yaml:"vector_dim"`
	NumChunks     int    `yaml:"num_chunks"`
	SearchLimit   int    `yaml:"search_limit"`
	ChunkSize     int    `yaml:"chunk_size"`
	ChunkOverlap  int    `yaml:"chunk_overlap"`
}

type DatabaseConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Name           string `yaml:"name"`
	SSLMode        string `yaml:"ssl_mode"`
	Debug          bool   `yaml:"debug"`
	ArchiveStories bool   `yaml:"archive_stories"`
}

type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway_url"`
	Job            string `yaml:"job"`
}

// DSN returns the postgres connection string without the password,
// which is handed to the driver separately.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s@%s:%d/%s?sslmode=%s", d.User, d.Host, d.Port, d.Name, d.SSLMode)
}

// DatabaseEnabled reports whether any component needs a postgres connection.
func (c *Config) DatabaseEnabled() bool {
	return c.RAG.Backend == BackendPGVector || c.Database.ArchiveStories
}

// LoadConfig reads the yaml file at path, overlays secrets from the
// environment (and .env when present) and fills in defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes yaml and applies defaults. It does not read the environment.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if c.ChatLLM.Key == "" {
			c.ChatLLM.Key = key
		}
		if c.EmbedLLM.Key == "" {
			c.EmbedLLM.Key = key
		}
		if c.Image.Key == "" {
			c.Image.Key = key
		}
	}
	if pw := os.Getenv("DATABASE_PASSWORD"); pw != "" {
		c.Database.Password = pw
	}
	if key := os.Getenv("RAG_ENCRYPTION_KEY"); key != "" {
		c.RAG.EncryptionKey = key
	}
}

func (c *Config) applyDefaults() {
	c.ChatLLM.applyDefaults(defaultChatModel)
	c.EmbedLLM.applyDefaults(defaultEmbeddingModel)

	if c.Image.BaseURL == "" {
		c.Image.BaseURL = defaultOpenAIBaseURL
	}
	if c.Image.Model == "" {
		c.Image.Model = defaultImageModel
	}
	if c.Image.Size == "" {
		c.Image.Size = defaultImageSize
	}
	if c.Image.Quality == "" {
		c.Image.Quality = defaultImageQuality
	}

	if c.RAG.Backend == "" {
		c.RAG.Backend = BackendChromem
	}
	if c.RAG.DBPath == "" {
		c.RAG.DBPath = defaultDBPath
	}
	if c.RAG.Collection == "" {
		c.RAG.Collection = defaultCollection
	}
	if c.RAG.NumChunks == 0 {
		c.RAG.NumChunks = defaultNumChunks
	}
	if c.RAG.SearchLimit == 0 {
		c.RAG.SearchLimit = defaultSearchLimit
	}
	if c.RAG.ChunkSize == 0 {
		c.RAG.ChunkSize = defaultChunkSize
	}
	if c.RAG.ChunkOverlap == 0 {
		c.RAG.ChunkOverlap = defaultChunkOverlap
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Metrics.Job == "" {
		c.Metrics.Job = defaultMetricsJob
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

func (l *LLMConfig) applyDefaults(model string) {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	if l.Provider == "" {
		l.Provider = ProviderOpenAI
	}
	if l.Model == "" {
		l.Model = model
	}
	if l.BaseURL == "" {
		if l.Provider == ProviderOllama {
			l.BaseURL = defaultOllamaBaseURL
		} else {
			l.BaseURL = defaultOpenAIBaseURL
		}
	}
}

func (c *Config) Validate() error {
	for name, l := range map[string]LLMConfig{"chat_llm": c.ChatLLM, "embed_llm": c.EmbedLLM} {
		if l.Provider != ProviderOpenAI && l.Provider != ProviderOllama {
			return fmt.Errorf("%s: unsupported provider %q", name, l.Provider)
		}
	}
	if c.RAG.Backend != BackendChromem && c.RAG.Backend != BackendPGVector {
		return fmt.Errorf("rag: unsupported backend %q", c.RAG.Backend)
	}
	if c.RAG.NumChunks < 0 || c.RAG.SearchLimit < 0 || c.RAG.VectorDim < 0 {
		return fmt.Errorf("rag: num_chunks, search_limit and vector_dim must not be negative")
	}
	if c.RAG.ChunkOverlap >= c.RAG.ChunkSize {
		return fmt.Errorf("rag: chunk_overlap (%d) must be smaller than chunk_size (%d)", c.RAG.ChunkOverlap, c.RAG.ChunkSize)
	}
	if c.DatabaseEnabled() && (c.Database.User == "" || c.Database.Name == "") {
		return fmt.Errorf("database: user and name are required")
	}
	return nil
}

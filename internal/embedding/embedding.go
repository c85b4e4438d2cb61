package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"story-rag/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const probeText = "dimension probe"

var ErrEmptyEmbedding = errors.New("embedder returned an empty vector")

// New creates an embedder for the configured provider.
func New(llmConfig *config.LLMConfig) (embeddings.Embedder, error) {
	log.Debug().Interface("config", map[string]string{
		"provider":        llmConfig.Provider,
		"base_url":        llmConfig.BaseURL,
		"embedding_model": llmConfig.Model,
	}).Msg("Creating embedder")

	switch llmConfig.Provider {
	case config.ProviderOllama:
		return NewOllamaEmbedder(llmConfig)
	default:
		return NewOpenAIEmbedder(llmConfig)
	}
}

func NewOpenAIEmbedder(llmConfig *config.LLMConfig) (*embeddings.EmbedderImpl, error) {
	llm, err := openai.New(
		openai.WithBaseURL(llmConfig.BaseURL),
		openai.WithToken(strings.TrimPrefix(llmConfig.Key, "Bearer ")),
		openai.WithEmbeddingModel(llmConfig.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize openai embedding model: %w", err)
	}
	return embeddings.NewEmbedder(llm)
}

func NewOllamaEmbedder(llmConfig *config.LLMConfig) (*embeddings.EmbedderImpl, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(llmConfig.BaseURL),
		ollama.WithModel(llmConfig.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ollama embedding model: %w", err)
	}
	return embeddings.NewEmbedder(llm)
}

// Dimension embeds a probe text and returns the vector length the model
// produces. Collections are created with this size.
func Dimension(ctx context.Context, embedder embeddings.Embedder) (int, error) {
	vec, err := embedder.EmbedQuery(ctx, probeText)
	if err != nil {
		return 0, fmt.Errorf("failed to probe embedding dimension: %w", err)
	}
	if len(vec) == 0 {
		return 0, ErrEmptyEmbedding
	}
	return len(vec), nil
}

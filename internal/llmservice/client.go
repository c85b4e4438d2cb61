package llmservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"story-rag/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyResponse = errors.New("llm returned no choices")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient is the chat completion service the generators depend on.
type ChatClient interface {
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)
}

type Client struct {
	llm   llms.Model
	model string
}

// New builds a chat client for the configured provider.
func New(llmConfig *config.LLMConfig) (*Client, error) {
	log.Debug().Str("provider", llmConfig.Provider).Str("base_url", llmConfig.BaseURL).Str("model", llmConfig.Model).Msg("Creating chat client")

	var (
		llm llms.Model
		err error
	)
	switch llmConfig.Provider {
	case config.ProviderOllama:
		llm, err = ollama.New(
			ollama.WithServerURL(llmConfig.BaseURL),
			ollama.WithModel(llmConfig.Model),
		)
	default:
		llm, err = openai.New(
			openai.WithBaseURL(llmConfig.BaseURL),
			openai.WithToken(strings.TrimPrefix(llmConfig.Key, "Bearer ")),
			openai.WithModel(llmConfig.Model),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s chat model: %w", llmConfig.Provider, err)
	}
	return NewWithModel(llm, llmConfig.Model), nil
}

func NewWithModel(llm llms.Model, model string) *Client {
	return &Client{llm: llm, model: model}
}

// Complete sends one chat request and returns the text of the first choice.
func (c *Client) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	msgContent := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		msgContent = append(msgContent, llms.TextParts(messageType(m.Role), m.Content))
	}

	res, err := c.llm.GenerateContent(ctx, msgContent,
		llms.WithModel(c.model),
		llms.WithTemperature(temperature),
	)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if res == nil || len(res.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return res.Choices[0].Content, nil
}

func messageType(role string) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

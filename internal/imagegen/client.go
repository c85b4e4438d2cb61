package imagegen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"story-rag/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// ErrImageGenerationFailed wraps every failure of the image service.
var ErrImageGenerationFailed = errors.New("image generation failed")

// ImageClient is the image generation service the story pipeline depends on.
type ImageClient interface {
	Generate(ctx context.Context, prompt, size, quality string, n int) ([]string, error)
}

type Client struct {
	client      *openai.Client
	model       string
	styleSuffix string
}

func New(imageConfig *config.ImageConfig) *Client {
	clientConfig := openai.DefaultConfig(strings.TrimPrefix(imageConfig.Key, "Bearer "))
	if imageConfig.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(imageConfig.BaseURL, "/")
	}
	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       imageConfig.Model,
		styleSuffix: imageConfig.StyleSuffix,
	}
}

// Generate requests n images and returns their URLs.
func (c *Client) Generate(ctx context.Context, prompt, size, quality string, n int) ([]string, error) {
	fullPrompt := prompt + c.styleSuffix
	log.Debug().Str("model", c.model).Str("size", size).Int("n", n).Int("prompt_len", len(fullPrompt)).Msg("Requesting image")

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         fullPrompt,
		Model:          c.model,
		N:              n,
		Size:           size,
		Quality:        quality,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
	}

	urls := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.URL != "" {
			urls = append(urls, d.URL)
		}
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: response contained no image urls", ErrImageGenerationFailed)
	}
	return urls, nil
}

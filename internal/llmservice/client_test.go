package llmservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, o := range options {
		o(&f.opts)
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestClient_Complete(t *testing.T) {
	fm := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "an outline"}}}}
	c := NewWithModel(fm, "gpt-4o")

	out, err := c.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "be helpful"},
		{Role: RoleUser, Content: "write"},
	}, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "an outline", out)

	require.Len(t, fm.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, fm.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, fm.messages[1].Role)
	assert.Equal(t, llms.TextContent{Text: "write"}, fm.messages[1].Parts[0])
	assert.InDelta(t, 0.7, fm.opts.Temperature, 1e-9)
	assert.Equal(t, "gpt-4o", fm.opts.Model)
}

func TestClient_CompleteErrors(t *testing.T) {
	c := NewWithModel(&fakeModel{resp: &llms.ContentResponse{}}, "m")
	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, 0.3)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	boom := errors.New("quota exceeded")
	c = NewWithModel(&fakeModel{err: boom}, "m")
	_, err = c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, 0.3)
	assert.ErrorIs(t, err, boom)
}

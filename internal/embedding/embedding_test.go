package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedEmbedder struct {
	vec []float32
}

func (f fixedEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vec
	}
	return out, nil
}

func (f fixedEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	return f.vec, nil
}

func TestDimension(t *testing.T) {
	dim, err := Dimension(context.Background(), fixedEmbedder{vec: make([]float32, 384)})
	require.NoError(t, err)
	assert.Equal(t, 384, dim)

	_, err = Dimension(context.Background(), fixedEmbedder{})
	assert.ErrorIs(t, err, ErrEmptyEmbedding)
}

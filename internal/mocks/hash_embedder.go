package mocks

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/tmc/langchaingo/embeddings"
)

// HashEmbedder is a deterministic bag-of-words embedder for tests. Each
// lowercased word bumps one hashed component; the last component is a
// constant bias so no vector is all zeros.
type HashEmbedder struct {
	Dim int
}

func NewHashEmbedder(dim int) *HashEmbedder {
	return &HashEmbedder{Dim: dim}
}

func (e *HashEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.EmbedQuery(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (e *HashEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.Dim)
	vec[e.Dim-1] = 0.5
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		vec[h.Sum32()%uint32(e.Dim-1)]++
	}
	return vec, nil
}

var _ embeddings.Embedder = (*HashEmbedder)(nil)

package chromemdb

import (
	"context"
	"testing"

	"github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorDBManager_QueryEmptyCollection(t *testing.T) {
	ctx := context.Background()
	m := NewInMemory()

	_, err := m.QueryEmbedding(ctx, []float32{1, 0, 0}, 3)
	assert.ErrorIs(t, err, ErrNoCollection)

	_, err = m.GetOrCreateCollection(ctx, "kb", 3, nil)
	require.NoError(t, err)

	res, err := m.QueryEmbedding(ctx, []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestVectorDBManager_UpsertOverwritesAndClampsLimit(t *testing.T) {
	ctx := context.Background()
	m := NewInMemory()
	_, err := m.GetOrCreateCollection(ctx, "kb", 3, nil)
	require.NoError(t, err)

	docs := []chromem.Document{
		{ID: "a", Content: "first", Embedding: []float32{1, 0, 0}},
		{ID: "b", Content: "second", Embedding: []float32{0, 1, 0}},
	}
	require.NoError(t, m.Upsert(ctx, docs))
	require.NoError(t, m.Upsert(ctx, []chromem.Document{{ID: "a", Content: "first again", Embedding: []float32{1, 0, 0}}}))
	assert.Equal(t, 2, m.Count())

	res, err := m.QueryEmbedding(ctx, []float32{1, 0.1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "a", res[0].ID)
	assert.Equal(t, "first again", res[0].Content)
	assert.GreaterOrEqual(t, res[0].Similarity, res[1].Similarity)
}

func TestVectorDBManager_RejectsDimensionChange(t *testing.T) {
	ctx := context.Background()
	m := NewInMemory()
	_, err := m.GetOrCreateCollection(ctx, "kb", 3, nil)
	require.NoError(t, err)
	require.NoError(t, m.Upsert(ctx, []chromem.Document{{ID: "a", Content: "x", Embedding: []float32{1, 0, 0}}}))

	_, err = m.GetOrCreateCollection(ctx, "kb", 5, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestVectorDBManager_ExportImport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	key := "0123456789abcdef0123456789abcdef"

	m, err := NewVectorDBManager(dir, "kb", true, key)
	require.NoError(t, err)
	_, err = m.GetOrCreateCollection(ctx, "kb", 3, nil)
	require.NoError(t, err)
	require.NoError(t, m.Upsert(ctx, []chromem.Document{{ID: "a", Content: "kept", Embedding: []float32{0, 0, 1}}}))
	require.NoError(t, m.Export())

	restored, err := NewVectorDBManager(dir, "kb", true, key)
	require.NoError(t, err)
	require.NoError(t, restored.Import("kb"))
	_, err = restored.GetOrCreateCollection(ctx, "kb", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Count())
}

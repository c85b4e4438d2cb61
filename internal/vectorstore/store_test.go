package vectorstore_test

import (
	"context"
	"testing"

	"story-rag/internal/chromemdb"
	"story-rag/internal/config"
	"story-rag/internal/mocks"
	"story-rag/internal/models"
	"story-rag/internal/vectorstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDim = 64

func newChromemStore(t *testing.T) *vectorstore.ChromemStore {
	t.Helper()
	s, err := vectorstore.NewChromemStore(context.Background(), chromemdb.NewInMemory(), mocks.NewHashEmbedder(testDim), "kb", testDim)
	require.NoError(t, err)
	return s
}

func gravityMeta(n int) []models.ChunkMetadata {
	out := make([]models.ChunkMetadata, n)
	for i := range out {
		out[i] = models.ChunkMetadata{Subject: "Physics", Topic: "Gravity", Grade: "grade_6", Curriculum: "IB", ChunkIndex: i}
	}
	return out
}

func TestChromemStore_SearchOrdersByScore(t *testing.T) {
	ctx := context.Background()
	s := newChromemStore(t)

	texts := []string{
		"Gravity pulls falling objects toward the Earth.",
		"Physics explains why objects fall at the same rate without air.",
		"The Moon orbits the Earth because of gravity.",
		"Plants make food from sunlight.",
		"Isaac Newton described gravity as a force between masses.",
	}
	require.NoError(t, s.Upsert(ctx, texts, gravityMeta(len(texts))))
	assert.Equal(t, len(texts), s.Count())

	results, err := s.Search(ctx, "Physics Gravity falling objects", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 3)
	for i, r := range results {
		assert.NotEmpty(t, r.Text)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "Physics", r.Metadata.Subject)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score, r.Score)
		}
	}
	assert.Equal(t, texts[0], results[0].Text)
}

func TestChromemStore_EmptyCollection(t *testing.T) {
	s := newChromemStore(t)

	results, err := s.Search(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestChromemStore_LimitLargerThanCollection(t *testing.T) {
	ctx := context.Background()
	s := newChromemStore(t)
	require.NoError(t, s.Upsert(ctx, []string{"only one chunk"}, gravityMeta(1)))

	results, err := s.Search(ctx, "chunk", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestChromemStore_LengthMismatch(t *testing.T) {
	s := newChromemStore(t)

	err := s.Upsert(context.Background(), []string{"a", "b"}, gravityMeta(1))
	assert.ErrorIs(t, err, vectorstore.ErrLengthMismatch)
	assert.Zero(t, s.Count())
}

func TestChromemStore_IdsDoNotCollideAcrossBatches(t *testing.T) {
	ctx := context.Background()
	s := newChromemStore(t)

	require.NoError(t, s.Upsert(ctx, []string{"gravity chunk"}, gravityMeta(1)))
	other := []models.ChunkMetadata{{Subject: "Biology", Topic: "Cells", Grade: "grade_6", Curriculum: "IB", ChunkIndex: 0}}
	require.NoError(t, s.Upsert(ctx, []string{"cell chunk"}, other))
	assert.Equal(t, 2, s.Count())

	// same batch again overwrites in place
	require.NoError(t, s.Upsert(ctx, []string{"gravity chunk"}, gravityMeta(1)))
	assert.Equal(t, 2, s.Count())
}

func TestChromemStore_DimensionMismatch(t *testing.T) {
	ctx := context.Background()
	s, err := vectorstore.NewChromemStore(ctx, chromemdb.NewInMemory(), mocks.NewHashEmbedder(testDim), "kb", testDim+1)
	require.NoError(t, err)

	err = s.Upsert(ctx, []string{"text"}, gravityMeta(1))
	assert.ErrorIs(t, err, vectorstore.ErrDimensionMismatch)
}

func TestChromemStore_Reset(t *testing.T) {
	ctx := context.Background()
	s := newChromemStore(t)
	require.NoError(t, s.Upsert(ctx, []string{"Gravity pulls objects down.", "The Moon orbits the Earth."}, gravityMeta(2)))
	require.Equal(t, 2, s.Count())

	require.NoError(t, s.Reset(ctx))
	assert.Zero(t, s.Count())
	results, err := s.Search(ctx, "gravity", 3)
	require.NoError(t, err)
	assert.Empty(t, results)

	require.NoError(t, s.Upsert(ctx, []string{"Tides follow the Moon."}, gravityMeta(1)))
	assert.Equal(t, 1, s.Count())
}

func TestRecordID(t *testing.T) {
	meta := models.ChunkMetadata{Subject: "Physics", Topic: "Gravity", Grade: "grade_6", Curriculum: "IB"}

	a := vectorstore.RecordID("kb", "text", meta)
	assert.Equal(t, a, vectorstore.RecordID("kb", "text", meta))
	assert.NotEqual(t, a, vectorstore.RecordID("other", "text", meta))

	meta.ChunkIndex = 1
	assert.NotEqual(t, a, vectorstore.RecordID("kb", "text", meta))
}

func TestOpen_InMemoryChromem(t *testing.T) {
	ragConfig := &config.RAGConfig{
		Backend:    config.BackendChromem,
		DBPath:     t.TempDir(),
		Collection: "kb",
		InMemory:   true,
	}
	s, err := vectorstore.Open(context.Background(), ragConfig, mocks.NewHashEmbedder(testDim), nil)
	require.NoError(t, err)
	assert.IsType(t, &vectorstore.ChromemStore{}, s)
}

func TestOpen_PGVectorNeedsDatabase(t *testing.T) {
	ragConfig := &config.RAGConfig{Backend: config.BackendPGVector, Collection: "kb", VectorDim: testDim}
	_, err := vectorstore.Open(context.Background(), ragConfig, mocks.NewHashEmbedder(testDim), nil)
	assert.Error(t, err)
}

package db

import (
	"context"
	"os"
	"strings"
	"testing"

	"story-rag/internal/config"
	"story-rag/internal/models"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func openIntegrationDB(t *testing.T) *bun.DB {
	t.Helper()
	if os.Getenv("PG_INTEGRATION") != "1" {
		t.Skip("set PG_INTEGRATION=1 (and DATABASE_* variables) to run postgres integration tests")
	}
	cfg, err := config.Parse([]byte(`
database:
  user: ` + envOr("DATABASE_USER", "postgres") + `
  name: ` + envOr("DATABASE_NAME", "story_rag") + `
  host: ` + envOr("DATABASE_HOST", "localhost") + `
`))
	require.NoError(t, err)
	cfg.Database.Password = os.Getenv("DATABASE_PASSWORD")

	bunDB := NewDB(ConnectDB(&cfg.Database), false)
	t.Cleanup(func() { _ = bunDB.Close() })
	require.NoError(t, InitDB(context.Background(), bunDB))
	return bunDB
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestChunksIntegration(t *testing.T) {
	bunDB := openIntegrationDB(t)
	ctx := context.Background()
	collection := "it_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	dim, err := ChunkDimension(ctx, bunDB, collection)
	require.NoError(t, err)
	assert.Zero(t, dim)

	chunks := []Chunk{
		{ID: uuid.NewString(), Collection: collection, Content: "apples fall", Embedding: pgvector.NewVector([]float32{1, 0, 0}), Subject: "Physics", Topic: "Gravity"},
		{ID: uuid.NewString(), Collection: collection, Content: "moons orbit", Embedding: pgvector.NewVector([]float32{0, 1, 0}), Subject: "Physics", Topic: "Gravity", ChunkIndex: 1},
	}
	require.NoError(t, UpsertChunks(ctx, bunDB, chunks))
	require.NoError(t, UpsertChunks(ctx, bunDB, chunks[:1]))

	n, err := CountChunks(ctx, bunDB, collection)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dim, err = ChunkDimension(ctx, bunDB, collection)
	require.NoError(t, err)
	assert.Equal(t, 3, dim)

	hits, err := SearchChunks(ctx, bunDB, collection, []float32{1, 0.1, 0}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "apples fall", hits[0].Content)
	assert.GreaterOrEqual(t, hits[0].Score, hits[1].Score)

	other := Chunk{ID: uuid.NewString(), Collection: collection + "_other", Content: "tides rise", Embedding: pgvector.NewVector([]float32{0, 0, 1})}
	require.NoError(t, UpsertChunks(ctx, bunDB, []Chunk{other}))

	removed, err := DeleteChunks(ctx, bunDB, collection)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	n, err = CountChunks(ctx, bunDB, collection)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = CountChunks(ctx, bunDB, other.Collection)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = DeleteChunks(ctx, bunDB, other.Collection)
	require.NoError(t, err)
}

func TestStoryArchiveIntegration(t *testing.T) {
	bunDB := openIntegrationDB(t)
	ctx := context.Background()
	archive := NewStoryArchive(bunDB)
	key := "it_" + uuid.NewString()

	_, err := archive.Get(ctx, key)
	assert.ErrorIs(t, err, ErrStoryNotFound)

	story := &models.Story{Subject: "Physics", Topic: "Gravity", Grade: "grade_6", Curriculum: "IB", Outline: "Scene 1", Scenes: []models.Scene{{Narrative: "n"}}}
	require.NoError(t, archive.Save(ctx, key, story))

	got, err := archive.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, story, got)
}

package vectorstore

import (
	"context"
	"fmt"

	"story-rag/internal/db"
	"story-rag/internal/models"

	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/uptrace/bun"
)

// PGStore keeps the collection as rows of the knowledge_chunks table.
type PGStore struct {
	db         *bun.DB
	embedder   embeddings.Embedder
	collection string
	dim        int
}

// NewPGStore fails with ErrDimensionMismatch when the collection already
// holds vectors of another size.
func NewPGStore(ctx context.Context, bunDB *bun.DB, embedder embeddings.Embedder, collection string, dim int) (*PGStore, error) {
	if err := db.InitDB(ctx, bunDB); err != nil {
		return nil, err
	}
	existing, err := db.ChunkDimension(ctx, bunDB, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection dimension: %w", err)
	}
	if existing != 0 && existing != dim {
		return nil, fmt.Errorf("%w: collection %q holds %d, embedder produces %d", ErrDimensionMismatch, collection, existing, dim)
	}
	return &PGStore{db: bunDB, embedder: embedder, collection: collection, dim: dim}, nil
}

func (s *PGStore) Upsert(ctx context.Context, texts []string, metadata []models.ChunkMetadata) error {
	if err := checkBatch(texts, metadata); err != nil {
		return err
	}
	if len(texts) == 0 {
		return nil
	}

	vectors, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("%w: %d texts, %d embeddings", ErrLengthMismatch, len(texts), len(vectors))
	}

	chunks := make([]db.Chunk, len(texts))
	for i, text := range texts {
		if err := checkDimension(vectors[i], s.dim); err != nil {
			return err
		}
		meta := metadata[i]
		chunks[i] = db.Chunk{
			ID:         RecordID(s.collection, text, meta),
			Collection: s.collection,
			Content:    text,
			Embedding:  pgvector.NewVector(vectors[i]),
			Subject:    meta.Subject,
			Topic:      meta.Topic,
			Grade:      meta.Grade,
			Curriculum: meta.Curriculum,
			ChunkIndex: meta.ChunkIndex,
			Source:     meta.Source,
		}
	}
	if err := db.UpsertChunks(ctx, s.db, chunks); err != nil {
		return fmt.Errorf("failed to store chunks: %w", err)
	}
	log.Debug().Str("collection", s.collection).Int("rows", len(chunks)).Msg("Upserted chunks")
	return nil
}

func (s *PGStore) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if limit <= 0 {
		return []models.SearchResult{}, nil
	}
	vec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if err := checkDimension(vec, s.dim); err != nil {
		return nil, err
	}

	rows, err := db.SearchChunks(ctx, s.db, s.collection, vec, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}
	results := make([]models.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, models.SearchResult{
			ID:    row.ID,
			Text:  row.Content,
			Score: row.Score,
			Metadata: models.ChunkMetadata{
				Subject:    row.Subject,
				Topic:      row.Topic,
				Grade:      row.Grade,
				Curriculum: row.Curriculum,
				ChunkIndex: row.ChunkIndex,
				Source:     row.Source,
			},
		})
	}
	return results, nil
}

// Reset deletes the collection's rows. Other collections in the table stay.
func (s *PGStore) Reset(ctx context.Context) error {
	removed, err := db.DeleteChunks(ctx, s.db, s.collection)
	if err != nil {
		return fmt.Errorf("failed to reset collection: %w", err)
	}
	log.Info().Str("collection", s.collection).Int64("removed", removed).Msg("Collection reset")
	return nil
}

package vectorstore

import (
	"context"
	"fmt"

	"story-rag/internal/chromemdb"
	"story-rag/internal/models"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
)

// ChromemStore keeps the collection in an embedded chromem database.
type ChromemStore struct {
	manager       *chromemdb.VectorDBManager
	embedder      embeddings.Embedder
	embeddingFunc chromem.EmbeddingFunc
	collection    string
	dim           int
}

func NewChromemStore(ctx context.Context, manager *chromemdb.VectorDBManager, embedder embeddings.Embedder, collection string, dim int) (*ChromemStore, error) {
	embeddingFunc := func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}
	if _, err := manager.GetOrCreateCollection(ctx, collection, dim, embeddingFunc); err != nil {
		return nil, err
	}
	return &ChromemStore{
		manager:       manager,
		embedder:      embedder,
		embeddingFunc: embeddingFunc,
		collection:    collection,
		dim:           dim,
	}, nil
}

func (s *ChromemStore) Upsert(ctx context.Context, texts []string, metadata []models.ChunkMetadata) error {
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

	docs := make([]chromem.Document, len(texts))
	for i, text := range texts {
		if err := checkDimension(vectors[i], s.dim); err != nil {
			return err
		}
		docs[i] = chromem.Document{
			ID:        RecordID(s.collection, text, metadata[i]),
			Metadata:  metadata[i].Map(),
			Embedding: vectors[i],
			Content:   text,
		}
	}
	if err := s.manager.Upsert(ctx, docs); err != nil {
		return err
	}
	log.Debug().Str("collection", s.collection).Int("documents", len(docs)).Msg("Upserted chunks")
	return nil
}

func (s *ChromemStore) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if s.manager.Count() == 0 || limit <= 0 {
		return []models.SearchResult{}, nil
	}
	vec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if err := checkDimension(vec, s.dim); err != nil {
		return nil, err
	}

	hits, err := s.manager.QueryEmbedding(ctx, vec, limit)
	if err != nil {
		return nil, err
	}
	results := make([]models.SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, models.SearchResult{
			ID:       hit.ID,
			Text:     hit.Content,
			Score:    float64(hit.Similarity),
			Metadata: models.MetadataFromMap(hit.Metadata),
		})
	}
	return results, nil
}

// Export writes an in-memory collection to its encrypted file. Persistent
// databases are already on disk.
func (s *ChromemStore) Export() error {
	if !s.manager.InMemory() {
		log.Info().Str("collection", s.collection).Msg("Persistent collection, nothing to export")
		return nil
	}
	return s.manager.Export()
}

// Reset deletes the collection and opens it again empty.
func (s *ChromemStore) Reset(ctx context.Context) error {
	removed := s.manager.Count()
	if err := s.manager.DeleteCollection(); err != nil {
		return err
	}
	if _, err := s.manager.GetOrCreateCollection(ctx, s.collection, s.dim, s.embeddingFunc); err != nil {
		return err
	}
	log.Info().Str("collection", s.collection).Int("removed", removed).Msg("Collection reset")
	return nil
}

func (s *ChromemStore) Count() int {
	return s.manager.Count()
}

package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"story-rag/internal/chromemdb"
	"story-rag/internal/config"
	"story-rag/internal/embedding"
	"story-rag/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/uptrace/bun"
)

var (
	ErrLengthMismatch    = errors.New("texts and metadata differ in length")
	ErrDimensionMismatch = chromemdb.ErrDimensionMismatch
)

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("story-rag/knowledge_chunks"))

// Store is the retrieval store shared by seeding and scene generation.
type Store interface {
	// Upsert embeds texts and writes them with their metadata, replacing
	// records with the same id.
	Upsert(ctx context.Context, texts []string, metadata []models.ChunkMetadata) error
	// Search returns up to limit records ordered by descending cosine
	// similarity. An empty collection yields no results.
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
}

// RecordID derives a stable id for a chunk. Re-seeding the same batch
// overwrites itself; chunks of different batches never collide.
func RecordID(collection, text string, meta models.ChunkMetadata) string {
	name := strings.Join([]string{
		collection,
		meta.Subject,
		meta.Topic,
		meta.Grade,
		meta.Curriculum,
		strconv.Itoa(meta.ChunkIndex),
		text,
	}, "|")
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

// Open builds the backend selected by ragConfig.Backend. bunDB is only used
// by the pgvector backend and may be nil otherwise.
func Open(ctx context.Context, ragConfig *config.RAGConfig, embedder embeddings.Embedder, bunDB *bun.DB) (Store, error) {
	dim := ragConfig.VectorDim
	if dim == 0 {
		probed, err := embedding.Dimension(ctx, embedder)
		if err != nil {
			return nil, err
		}
		dim = probed
	}
	log.Info().Str("backend", ragConfig.Backend).Str("collection", ragConfig.Collection).Int("dimension", dim).Msg("Opening retrieval store")

	switch ragConfig.Backend {
	case config.BackendPGVector:
		if bunDB == nil {
			return nil, fmt.Errorf("pgvector backend requires a database connection")
		}
		s, err := NewPGStore(ctx, bunDB, embedder, ragConfig.Collection, dim)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		manager, err := chromemdb.NewVectorDBManager(ragConfig.DBPath, ragConfig.Collection, ragConfig.InMemory, ragConfig.EncryptionKey)
		if err != nil {
			return nil, err
		}
		if err := manager.Import(ragConfig.Collection); err != nil {
			return nil, err
		}
		s, err := NewChromemStore(ctx, manager, embedder, ragConfig.Collection, dim)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func checkBatch(texts []string, metadata []models.ChunkMetadata) error {
	if len(texts) != len(metadata) {
		return fmt.Errorf("%w: %d texts, %d metadata", ErrLengthMismatch, len(texts), len(metadata))
	}
	return nil
}

func checkDimension(vec []float32, dim int) error {
	if len(vec) != dim {
		return fmt.Errorf("%w: got %d, collection holds %d", ErrDimensionMismatch, len(vec), dim)
	}
	return nil
}

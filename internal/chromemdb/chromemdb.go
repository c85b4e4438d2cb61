package chromemdb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
)

const (
	compress = false

	metaDimension = "dimension"
	metaMetric    = "metric"
	metricCosine  = "cosine"
)

var (
	ErrNoCollection      = errors.New("collection is not open")
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// VectorDBManager encapsulates the chromem-go database operations
type VectorDBManager struct {
	db            *chromem.DB
	collection    *chromem.Collection
	dbPath        string
	inMemory      bool
	encryptionKey string
	filePath      string
}

// NewVectorDBManager opens a persistent database under dbPath, or an
// in-memory one that is loaded from and exported to an encrypted file.
func NewVectorDBManager(dbPath, collectionName string, inMemory bool, encryptionKey string) (*VectorDBManager, error) {
	var db *chromem.DB
	var err error
	if inMemory {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(dbPath, compress)
		if err != nil {
			return nil, fmt.Errorf("failed to create database: %w", err)
		}
	}

	return &VectorDBManager{
		db:            db,
		dbPath:        dbPath,
		inMemory:      inMemory,
		encryptionKey: encryptionKey,
		filePath:      filepath.Join(dbPath, collectionName+".chromem"),
	}, nil
}

// NewInMemory is a manager without any file backing.
func NewInMemory() *VectorDBManager {
	return &VectorDBManager{db: chromem.NewDB(), inMemory: true}
}

// GetOrCreateCollection opens the named collection, creating it for vectors
// of size dim when absent. An existing collection whose vectors have a
// different size is rejected.
func (m *VectorDBManager) GetOrCreateCollection(ctx context.Context, collectionName string, dim int, embeddingFunc chromem.EmbeddingFunc) (*chromem.Collection, error) {
	metadata := map[string]string{
		metaDimension: strconv.Itoa(dim),
		metaMetric:    metricCosine,
	}
	c, err := m.db.GetOrCreateCollection(collectionName, metadata, embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to create/get collection: %w", err)
	}
	if err := verifyDimension(ctx, c, dim); err != nil {
		return nil, err
	}
	m.collection = c
	log.Debug().Str("collection", collectionName).Int("dimension", dim).Int("documents", c.Count()).Msg("Collection ready")
	return c, nil
}

// verifyDimension runs a probe query against a non-empty collection; chromem
// refuses to compare vectors of different lengths.
func verifyDimension(ctx context.Context, c *chromem.Collection, dim int) error {
	if dim <= 0 || c.Count() == 0 {
		return nil
	}
	probe := make([]float32, dim)
	for i := range probe {
		probe[i] = 1
	}
	if _, err := c.QueryEmbedding(ctx, probe, 1, nil, nil); err != nil {
		return fmt.Errorf("%w: collection %q does not hold %d-dimensional vectors: %v", ErrDimensionMismatch, c.Name, dim, err)
	}
	return nil
}

// Upsert adds documents, overwriting any with the same ID.
func (m *VectorDBManager) Upsert(ctx context.Context, documents []chromem.Document) error {
	if m.collection == nil {
		return ErrNoCollection
	}
	if err := m.collection.AddDocuments(ctx, documents, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents: %w", err)
	}
	return nil
}

// QueryEmbedding returns up to n nearest documents by cosine similarity.
// An empty collection yields no results rather than an error.
func (m *VectorDBManager) QueryEmbedding(ctx context.Context, embedding []float32, n int) ([]chromem.Result, error) {
	if m.collection == nil {
		return nil, ErrNoCollection
	}
	count := m.collection.Count()
	if count == 0 || n <= 0 {
		return nil, nil
	}
	if n > count {
		n = count
	}
	results, err := m.collection.QueryEmbedding(ctx, embedding, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query by similarity: %w", err)
	}
	return results, nil
}

func (m *VectorDBManager) Count() int {
	if m.collection == nil {
		return 0
	}
	return m.collection.Count()
}

// DeleteCollection drops the open collection and its documents.
func (m *VectorDBManager) DeleteCollection() error {
	if m.collection == nil {
		return ErrNoCollection
	}
	if err := m.db.DeleteCollection(m.collection.Name); err != nil {
		return fmt.Errorf("failed to drop collection: %w", err)
	}
	m.collection = nil
	return nil
}

// Export writes the open collection to an encrypted file.
func (m *VectorDBManager) Export() error {
	if m.encryptionKey == "" {
		return fmt.Errorf("encryption key is required")
	}
	if m.collection == nil {
		return ErrNoCollection
	}
	if m.dbPath == "" {
		return fmt.Errorf("db path is required")
	}
	if err := os.MkdirAll(m.dbPath, 0o755); err != nil {
		return fmt.Errorf("failed to create db path: %w", err)
	}

	log.Debug().Str("collection", m.collection.Name).Str("file", m.filePath).Msg("Exporting collection")
	if err := m.db.ExportToFile(m.filePath, compress, m.encryptionKey, m.collection.Name); err != nil {
		return fmt.Errorf("failed to export database: %w", err)
	}
	return nil
}

// Import loads a previous export into an in-memory database. A missing
// export file is not an error.
func (m *VectorDBManager) Import(collectionName string) error {
	if !m.inMemory || m.filePath == "" {
		return nil
	}
	if _, err := os.Stat(m.filePath); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := m.db.ImportFromFile(m.filePath, m.encryptionKey, collectionName); err != nil {
		return fmt.Errorf("failed to import database: %w", err)
	}
	log.Debug().Str("file", m.filePath).Msg("Imported collection")
	return nil
}

// InMemory reports whether changes are lost unless exported.
func (m *VectorDBManager) InMemory() bool {
	return m.inMemory
}

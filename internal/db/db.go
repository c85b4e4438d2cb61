package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"story-rag/internal/config"

	"github.com/pgvector/pgvector-go"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// Chunk is a knowledge chunk row. The embedding column is declared without
// a size; the store enforces one dimension per collection.
type Chunk struct {
	bun.BaseModel `bun:"table:knowledge_chunks,alias:kc"`
	ID            string          `bun:"id,pk"`
	Collection    string          `bun:"collection,notnull"`
	Content       string          `bun:"content,notnull"`
	Embedding     pgvector.Vector `bun:"embedding,notnull,type:vector"`
	Subject       string          `bun:"subject"`
	Topic         string          `bun:"topic"`
	Grade         string          `bun:"grade"`
	Curriculum    string          `bun:"curriculum"`
	ChunkIndex    int             `bun:"chunk_index"`
	Source        string          `bun:"source"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// ScoredChunk is a search hit; Score is cosine similarity.
type ScoredChunk struct {
	Chunk `bun:",extend"`
	Score float64 `bun:"score"`
}

func NewDB(sqldb *sql.DB, debug bool) *bun.DB {
	db := bun.NewDB(sqldb, pgdialect.New())
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db
}

func ConnectDB(dbConfig *config.DatabaseConfig) *sql.DB {
	return sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dbConfig.DSN()),
		pgdriver.WithPassword(dbConfig.Password),
	))
}

// InitDB creates the vector extension and every table this module uses.
func InitDB(ctx context.Context, db *bun.DB) error {
	if _, err := db.ExecContext(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}
	if _, err := db.NewCreateTable().Model((*Chunk)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create knowledge_chunks: %w", err)
	}
	if _, err := db.NewCreateIndex().
		Model((*Chunk)(nil)).
		Index("knowledge_chunks_collection_idx").
		Column("collection").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to index knowledge_chunks: %w", err)
	}
	if _, err := db.NewCreateTable().Model((*StoryRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create stories: %w", err)
	}
	return nil
}

// UpsertChunks inserts rows, replacing any with the same id.
func UpsertChunks(ctx context.Context, db *bun.DB, chunks []Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	_, err := db.NewInsert().
		Model(&chunks).
		On("CONFLICT (id) DO UPDATE").
		Set("content = EXCLUDED.content").
		Set("embedding = EXCLUDED.embedding").
		Set("subject = EXCLUDED.subject").
		Set("topic = EXCLUDED.topic").
		Set("grade = EXCLUDED.grade").
		Set("curriculum = EXCLUDED.curriculum").
		Set("chunk_index = EXCLUDED.chunk_index").
		Set("source = EXCLUDED.source").
		Exec(ctx)
	return err
}

// SearchChunks returns the limit nearest rows of a collection ordered by
// cosine distance.
func SearchChunks(ctx context.Context, db *bun.DB, collection string, queryEmbedding []float32, limit int) ([]ScoredChunk, error) {
	vec := pgvector.NewVector(queryEmbedding)
	var rows []ScoredChunk
	err := db.NewSelect().
		Model(&rows).
		ColumnExpr("kc.*").
		ColumnExpr("1 - (kc.embedding <=> ?) AS score", vec).
		Where("kc.collection = ?", collection).
		OrderExpr("kc.embedding <=> ?", vec).
		Limit(limit).
		Scan(ctx)
	return rows, err
}

func CountChunks(ctx context.Context, db *bun.DB, collection string) (int, error) {
	return db.NewSelect().Model((*Chunk)(nil)).Where("collection = ?", collection).Count(ctx)
}

// ChunkDimension reports the vector size stored in a collection, or 0 when
// the collection is empty.
func ChunkDimension(ctx context.Context, db *bun.DB, collection string) (int, error) {
	var dim int
	err := db.NewSelect().
		Model((*Chunk)(nil)).
		ColumnExpr("vector_dims(embedding)").
		Where("collection = ?", collection).
		Limit(1).
		Scan(ctx, &dim)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return dim, err
}

// DeleteChunks removes every row of a collection, leaving other collections.
func DeleteChunks(ctx context.Context, db *bun.DB, collection string) (int64, error) {
	res, err := db.NewDelete().Model((*Chunk)(nil)).Where("collection = ?", collection).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

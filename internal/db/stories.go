package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"story-rag/internal/models"

	"github.com/uptrace/bun"
)

var ErrStoryNotFound = errors.New("story not found")

// StoryRecord caches a generated story under its request key.
type StoryRecord struct {
	bun.BaseModel `bun:"table:stories,alias:s"`
	Key           string       `bun:"key,pk"`
	Story         models.Story `bun:"story,type:jsonb,notnull"`
	CreatedAt     time.Time    `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// StoryArchive stores finished stories keyed by models.StoryRequest.Key.
type StoryArchive struct {
	db *bun.DB
}

func NewStoryArchive(db *bun.DB) *StoryArchive {
	return &StoryArchive{db: db}
}

func (a *StoryArchive) Get(ctx context.Context, key string) (*models.Story, error) {
	var rec StoryRecord
	err := a.db.NewSelect().Model(&rec).Where("key = ?", key).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec.Story, nil
}

func (a *StoryArchive) Save(ctx context.Context, key string, story *models.Story) error {
	rec := &StoryRecord{Key: key, Story: *story}
	_, err := a.db.NewInsert().
		Model(rec).
		On("CONFLICT (key) DO UPDATE").
		Set("story = EXCLUDED.story").
		Set("created_at = current_timestamp").
		Exec(ctx)
	return err
}

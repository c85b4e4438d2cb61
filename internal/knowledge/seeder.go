package knowledge

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"story-rag/internal/grades"
	"story-rag/internal/llmservice"
	"story-rag/internal/metrics"
	"story-rag/internal/models"
	"story-rag/internal/parser"
	"story-rag/internal/vectorstore"

	"github.com/rs/zerolog/log"
)

const DefaultNumChunks = 10

// Seeder fills the retrieval store with grade-calibrated knowledge.
type Seeder struct {
	chat      llmservice.ChatClient
	store     vectorstore.Store
	docParser *parser.Parser
	numChunks int
}

// NewSeeder returns a seeder writing numChunks chunks per topic.
// docParser may be nil when documents are never seeded.
func NewSeeder(chat llmservice.ChatClient, store vectorstore.Store, docParser *parser.Parser, numChunks int) *Seeder {
	if numChunks <= 0 {
		numChunks = DefaultNumChunks
	}
	if docParser == nil {
		docParser = parser.New(nil)
	}
	return &Seeder{chat: chat, store: store, docParser: docParser, numChunks: numChunks}
}

// GetKnowledgeChunks asks the model once for factual passages and splits the
// answer into exactly the configured number of chunks.
func (s *Seeder) GetKnowledgeChunks(ctx context.Context, subject, topic, grade, curriculum string) ([]string, error) {
	profile := grades.Knowledge(grade)
	messages := []llmservice.Message{
		{Role: llmservice.RoleSystem, Content: fmt.Sprintf(models.KnowledgeSystemPrompt, grade)},
		{Role: llmservice.RoleUser, Content: fmt.Sprintf(models.KnowledgePromptTemplate,
			s.numChunks, subject, topic, grade, curriculum,
			profile.Complexity, profile.Vocabulary, profile.ChunkLength, profile.Examples)},
	}

	start := time.Now()
	response, err := s.chat.Complete(ctx, messages, models.FactualTemperature)
	metrics.ObserveLLM(metrics.OpChunks, start)
	if err != nil {
		return nil, fmt.Errorf("failed to generate knowledge chunks: %w", err)
	}
	return SplitChunks(response, s.numChunks), nil
}

// SeedKnowledgeBase generates chunks for the topic and upserts them with
// their metadata. An empty model answer seeds nothing and is not an error.
func (s *Seeder) SeedKnowledgeBase(ctx context.Context, subject, topic, grade, curriculum string) error {
	log.Info().Str("subject", subject).Str("topic", topic).Str("grade", grade).Str("curriculum", curriculum).Msg("Seeding knowledge base")

	chunks, err := s.GetKnowledgeChunks(ctx, subject, topic, grade, curriculum)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		log.Warn().Str("topic", topic).Msg("Model returned no knowledge, nothing seeded")
		return nil
	}

	if err := s.upsert(ctx, chunks, subject, topic, grade, curriculum, ""); err != nil {
		return err
	}
	metrics.ChunksSeeded.WithLabelValues(metrics.SourceLLM).Add(float64(len(chunks)))
	log.Info().Int("chunks", len(chunks)).Str("grade", grade).Str("curriculum", curriculum).Msg("Added knowledge chunks to the vector store")
	return nil
}

// SeedFromDocument parses a reference document and upserts its chunks,
// returning how many were written.
func (s *Seeder) SeedFromDocument(ctx context.Context, path, subject, topic, grade, curriculum string) (int, error) {
	chunks, err := s.docParser.ParseDocument(path)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		log.Warn().Str("file", path).Msg("Document has no text, nothing seeded")
		return 0, nil
	}

	if err := s.upsert(ctx, chunks, subject, topic, grade, curriculum, filepath.Base(path)); err != nil {
		return 0, err
	}
	metrics.ChunksSeeded.WithLabelValues(metrics.SourceDocument).Add(float64(len(chunks)))
	log.Info().Str("file", path).Int("chunks", len(chunks)).Msg("Added document chunks to the vector store")
	return len(chunks), nil
}

func (s *Seeder) upsert(ctx context.Context, chunks []string, subject, topic, grade, curriculum, source string) error {
	metadata := make([]models.ChunkMetadata, len(chunks))
	for i := range chunks {
		metadata[i] = models.ChunkMetadata{
			Subject:    subject,
			Topic:      topic,
			Grade:      grade,
			Curriculum: curriculum,
			ChunkIndex: i,
			Source:     source,
		}
	}
	if err := s.store.Upsert(ctx, chunks, metadata); err != nil {
		return fmt.Errorf("failed to store knowledge chunks: %w", err)
	}
	return nil
}

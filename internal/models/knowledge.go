package models

import "strconv"

const (
	MetaSubject    = "subject"
	MetaTopic      = "topic"
	MetaGrade      = "grade"
	MetaCurriculum = "curriculum"
	MetaChunkIndex = "chunk_index"
	MetaSource     = "source"
)

// ChunkMetadata describes where a knowledge chunk came from. ChunkIndex is
// only unique inside one seeding batch.
type ChunkMetadata struct {
	Subject    string `json:"subject"`
	Topic      string `json:"topic"`
	Grade      string `json:"grade"`
	Curriculum string `json:"curriculum"`
	ChunkIndex int    `json:"chunk_index"`
	Source     string `json:"source,omitempty"`
}

type KnowledgeChunk struct {
	Text     string        `json:"text"`
	Metadata ChunkMetadata `json:"metadata"`
}

// SearchResult is a retrieved chunk with its cosine similarity to the query.
type SearchResult struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Score    float64       `json:"score"`
	Metadata ChunkMetadata `json:"metadata"`
}

// Map flattens the metadata into string pairs for index payloads.
func (m ChunkMetadata) Map() map[string]string {
	out := map[string]string{
		MetaSubject:    m.Subject,
		MetaTopic:      m.Topic,
		MetaGrade:      m.Grade,
		MetaCurriculum: m.Curriculum,
		MetaChunkIndex: strconv.Itoa(m.ChunkIndex),
	}
	if m.Source != "" {
		out[MetaSource] = m.Source
	}
	return out
}

func MetadataFromMap(in map[string]string) ChunkMetadata {
	idx, _ := strconv.Atoi(in[MetaChunkIndex])
	return ChunkMetadata{
		Subject:    in[MetaSubject],
		Topic:      in[MetaTopic],
		Grade:      in[MetaGrade],
		Curriculum: in[MetaCurriculum],
		ChunkIndex: idx,
		Source:     in[MetaSource],
	}
}

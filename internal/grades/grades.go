// Package grades maps grade identifiers to the stylistic constraints used
// when building prompts. The tables are fixed at init and never mutated.
package grades

import (
	"fmt"
	"sort"
	"strings"
)

// StoryProfile parameterizes outline and scene prompts.
type StoryProfile struct {
	Vocabulary        string `json:"vocabulary"`
	SentenceStructure string `json:"sentence_structure"`
	NarrativeStyle    string `json:"narrative_style"`
	ExplanationDepth  string `json:"explanation_depth"`
	ImageStyle        string `json:"image_style"`
}

// KnowledgeProfile parameterizes knowledge chunk prompts.
type KnowledgeProfile struct {
	Complexity  string `json:"complexity"`
	Vocabulary  string `json:"vocabulary"`
	ChunkLength string `json:"chunk_length"`
	Examples    string `json:"examples"`
}

// Story returns the profile for grade. An unknown grade gets generic
// phrasing that names it; a blank grade resolves to the default entry.
func Story(grade string) StoryProfile {
	p, _ := LookupStory(grade)
	return p
}

// LookupStory is Story that also reports whether grade was recognized.
func LookupStory(grade string) (StoryProfile, bool) {
	grade = normalize(grade)
	if p, ok := storyProfiles[grade]; ok {
		return p, true
	}
	return StoryProfile{
		Vocabulary:        fmt.Sprintf("appropriate for %s level", grade),
		SentenceStructure: fmt.Sprintf("suitable for %s level", grade),
		NarrativeStyle:    fmt.Sprintf("engaging for %s level", grade),
		ExplanationDepth:  fmt.Sprintf("appropriate for %s level", grade),
		ImageStyle:        fmt.Sprintf("visuals appropriate for %s level", grade),
	}, false
}

func Knowledge(grade string) KnowledgeProfile {
	p, _ := LookupKnowledge(grade)
	return p
}

func LookupKnowledge(grade string) (KnowledgeProfile, bool) {
	grade = normalize(grade)
	if p, ok := knowledgeProfiles[grade]; ok {
		return p, true
	}
	return KnowledgeProfile{
		Complexity:  fmt.Sprintf("appropriate for %s level", grade),
		Vocabulary:  fmt.Sprintf("suitable for %s level", grade),
		ChunkLength: fmt.Sprintf("paragraphs of appropriate length for %s level", grade),
		Examples:    fmt.Sprintf("examples suitable for %s level", grade),
	}, false
}

// Known lists every recognized grade identifier, sorted.
func Known() []string {
	out := make([]string, 0, len(storyProfiles))
	for g := range storyProfiles {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

func normalize(grade string) string {
	grade = strings.TrimSpace(grade)
	if grade == "" {
		return GradeDefault
	}
	return grade
}

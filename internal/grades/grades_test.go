package grades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_EveryKnownGradeIsComplete(t *testing.T) {
	known := Known()
	require.Len(t, known, 21)

	for _, g := range known {
		t.Run(g, func(t *testing.T) {
			sp, ok := LookupStory(g)
			require.True(t, ok)
			assert.NotEmpty(t, sp.Vocabulary)
			assert.NotEmpty(t, sp.SentenceStructure)
			assert.NotEmpty(t, sp.NarrativeStyle)
			assert.NotEmpty(t, sp.ExplanationDepth)
			assert.NotEmpty(t, sp.ImageStyle)

			kp, ok := LookupKnowledge(g)
			require.True(t, ok, "story and knowledge tables must cover the same grades")
			assert.NotEmpty(t, kp.Complexity)
			assert.NotEmpty(t, kp.Vocabulary)
			assert.NotEmpty(t, kp.ChunkLength)
			assert.NotEmpty(t, kp.Examples)
		})
	}
}

func TestStory_UnknownGradeNamesTheGrade(t *testing.T) {
	p, ok := LookupStory("grade_13")
	assert.False(t, ok)
	for _, field := range []string{p.Vocabulary, p.SentenceStructure, p.NarrativeStyle, p.ExplanationDepth, p.ImageStyle} {
		assert.Contains(t, field, "grade_13")
	}
}

func TestKnowledge_UnknownGradeNamesTheGrade(t *testing.T) {
	p, ok := LookupKnowledge("Grade Six")
	assert.False(t, ok)
	for _, field := range []string{p.Complexity, p.Vocabulary, p.ChunkLength, p.Examples} {
		assert.Contains(t, field, "Grade Six")
	}
}

func TestStory_BlankGradeUsesDefault(t *testing.T) {
	p, ok := LookupStory("  ")
	assert.True(t, ok)
	assert.Equal(t, storyProfiles[GradeDefault], p)
	assert.Equal(t, knowledgeProfiles[GradeDefault], Knowledge(""))
}

func TestStory_KnownGrade(t *testing.T) {
	p := Story(Grade6)
	assert.Contains(t, p.Vocabulary, "14000-17000")
	assert.Contains(t, Knowledge(Grade6).ChunkLength, "120-170")
}

package story

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentScenes_Markers(t *testing.T) {
	outline := `Title: The Falling Apple

Introduction to gravity
Scene 1: Mia drops an apple
She wonders why it falls.

Chapter 2: The Moon
Why doesn't the Moon fall?
**Part 3: Conclusion**
Mia explains gravity to her class.`

	got := SegmentScenes(outline)
	assert.Equal(t, []string{
		"Scene 1: Mia drops an apple\nShe wonders why it falls.",
		"Chapter 2: The Moon\nWhy doesn't the Moon fall?",
		"**Part 3: Conclusion**\nMia explains gravity to her class.",
	}, got)
}

func TestSegmentScenes_MarkdownHeadings(t *testing.T) {
	got := SegmentScenes("## Scene 1\nIntro\n## Scene 2\nMiddle\n## Scene 3\nEnd")
	assert.Len(t, got, 3)
	assert.Equal(t, "## Scene 2\nMiddle", got[1])
}

func TestSegmentScenes_FallbackFourGroups(t *testing.T) {
	for _, n := range []int{4, 5, 7, 10, 13} {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = strings.Repeat("x", i+1)
		}
		outline := strings.Join(lines, "\n\n")

		got := SegmentScenes(outline)
		require.Len(t, got, 4, "lines=%d", n)
		var rejoined []string
		for _, g := range got {
			assert.NotEmpty(t, g)
			rejoined = append(rejoined, strings.Split(g, "\n")...)
		}
		assert.Equal(t, lines, rejoined, "order must be preserved")
	}
}

func TestSegmentScenes_FallbackFewLines(t *testing.T) {
	assert.Equal(t, []string{"only line"}, SegmentScenes("only line"))
	assert.Nil(t, SegmentScenes("  \n \n"))
}

package knowledge

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitChunks_Paragraphs(t *testing.T) {
	var paras []string
	for i := 0; i < 12; i++ {
		paras = append(paras, fmt.Sprintf("Paragraph %d.", i))
	}

	got := SplitChunks(strings.Join(paras, "\n\n"), 10)
	assert.Equal(t, paras[:10], got)
}

func TestSplitChunks_BlankLinesWithSpaces(t *testing.T) {
	got := SplitChunks("First fact.\n   \nSecond fact.\r\n\r\nThird fact.", 3)
	assert.Equal(t, []string{"First fact.", "Second fact.", "Third fact."}, got)
}

func TestSplitChunks_BisectsBySentence(t *testing.T) {
	response := "A one. A two. A three. A four.\n\nB one. B two. B three. B four.\n\nC one! C two? C three. C four."

	got := SplitChunks(response, 10)
	assert.Equal(t, []string{
		"A one.", "A two.", "A three.", "A four.",
		"B one.", "B two.", "B three.", "B four.",
		"C one! C two?", "C three. C four.",
	}, got)
}

func TestSplitChunks_BisectsByWordThenRepeats(t *testing.T) {
	got := SplitChunks("Gravity pulls", 3)
	assert.Equal(t, []string{"Gravity", "pulls", "Gravity"}, got)
}

func TestSplitChunks_AlwaysExactlyN(t *testing.T) {
	responses := []string{
		"x",
		"One sentence only",
		"Short. Paragraph.",
		strings.Repeat("Many sentences here. ", 40),
		"a\n\nb\n\nc\n\nd\n\ne\n\nf\n\ng\n\nh\n\ni\n\nj\n\nk",
		"Decimal 3.14 stays whole. Another one.",
	}
	for _, r := range responses {
		for _, n := range []int{1, 4, 10, 25} {
			got := SplitChunks(r, n)
			assert.Len(t, got, n, "response %q", r)
			for _, c := range got {
				assert.NotEmpty(t, strings.TrimSpace(c))
			}
		}
	}
}

func TestSplitChunks_Empty(t *testing.T) {
	assert.Nil(t, SplitChunks("", 10))
	assert.Nil(t, SplitChunks(" \n\n \n", 10))
	assert.Nil(t, SplitChunks("text", 0))
}

func TestSentences(t *testing.T) {
	assert.Equal(t, []string{"Pi is 3.14 roughly.", "Is it?", "Yes"}, sentences("Pi is 3.14 roughly. Is it? Yes"))
}

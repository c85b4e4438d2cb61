package story

import (
	"fmt"
	"testing"

	"story-rag/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseSceneResponse_AllOrders(t *testing.T) {
	sections := map[string]string{
		models.MarkerNarrative:   "z",
		models.MarkerExplanation: "y",
		models.MarkerImagePrompt: "x",
	}
	orders := [][]string{
		{models.MarkerNarrative, models.MarkerExplanation, models.MarkerImagePrompt},
		{models.MarkerNarrative, models.MarkerImagePrompt, models.MarkerExplanation},
		{models.MarkerExplanation, models.MarkerNarrative, models.MarkerImagePrompt},
		{models.MarkerExplanation, models.MarkerImagePrompt, models.MarkerNarrative},
		{models.MarkerImagePrompt, models.MarkerNarrative, models.MarkerExplanation},
		{models.MarkerImagePrompt, models.MarkerExplanation, models.MarkerNarrative},
	}
	for _, order := range orders {
		var response string
		for _, m := range order {
			response += fmt.Sprintf("%s %s\n", m, sections[m])
		}
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			got := ParseSceneResponse(response)
			assert.Equal(t, models.Scene{Narrative: "z", Explanation: "y", ImagePrompt: "x"}, got)
		})
	}
}

func TestParseSceneResponse_MultiLineSections(t *testing.T) {
	response := "Here is your scene.\n\nNARRATIVE:\nMia dropped the apple.\n\nIt fell fast.\n\nEXPLANATION: Gravity pulls\nevery mass.\nIMAGE_PROMPT: A girl and a falling apple"

	got := ParseSceneResponse(response)
	assert.Equal(t, "Mia dropped the apple.\n\nIt fell fast.", got.Narrative)
	assert.Equal(t, "Gravity pulls\nevery mass.", got.Explanation)
	assert.Equal(t, "A girl and a falling apple", got.ImagePrompt)
	assert.Nil(t, got.ImageURL)
}

func TestParseSceneResponse_LineFallback(t *testing.T) {
	response := "NARRATIVE: Mia dropped the apple.\nIt fell.\n\n  EXPLANATION: Gravity.\nMore detail."

	got := ParseSceneResponse(response)
	assert.Equal(t, "Mia dropped the apple.\nIt fell.", got.Narrative)
	assert.Equal(t, "Gravity.\nMore detail.", got.Explanation)
	assert.Empty(t, got.ImagePrompt)
}

func TestParseSceneResponse_NoMarkers(t *testing.T) {
	assert.Equal(t, models.Scene{}, ParseSceneResponse("just some prose"))
}

func TestParseSceneResponse_BoldMarkers(t *testing.T) {
	got := ParseSceneResponse("**NARRATIVE:** z\n**EXPLANATION:** y\n**IMAGE_PROMPT:** x")
	assert.Equal(t, models.Scene{Narrative: "z", Explanation: "y", ImagePrompt: "x"}, got)
}

func TestParseSceneResponse_BoldMarkersLineFallback(t *testing.T) {
	got := ParseSceneResponse("**NARRATIVE:** Mia dropped the apple.\nIt fell.\n**EXPLANATION:**\nGravity pulls.")
	assert.Equal(t, "Mia dropped the apple.\nIt fell.", got.Narrative)
	assert.Equal(t, "Gravity pulls.", got.Explanation)
	assert.Empty(t, got.ImagePrompt)
}

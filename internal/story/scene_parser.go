package story

import (
	"sort"
	"strings"

	"story-rag/internal/models"
)

type section int

const (
	sectionNone section = iota
	sectionNarrative
	sectionExplanation
	sectionImagePrompt
)

var sectionMarkers = []struct {
	marker string
	kind   section
}{
	{models.MarkerNarrative, sectionNarrative},
	{models.MarkerExplanation, sectionExplanation},
	{models.MarkerImagePrompt, sectionImagePrompt},
}

// ParseSceneResponse reads the NARRATIVE:, EXPLANATION: and IMAGE_PROMPT:
// sections out of a model answer in whatever order they appear. When a
// marker is missing it falls back to reading line by line. ImageURL is left
// nil.
func ParseSceneResponse(response string) models.Scene {
	if scene, ok := parseByOffsets(response); ok {
		return scene
	}
	return parseByLines(response)
}

func parseByOffsets(response string) (models.Scene, bool) {
	type found struct {
		pos  int
		end  int
		kind section
	}
	hits := make([]found, 0, len(sectionMarkers))
	for _, m := range sectionMarkers {
		pos := strings.Index(response, m.marker)
		if pos < 0 {
			return models.Scene{}, false
		}
		hits = append(hits, found{pos: pos, end: pos + len(m.marker), kind: m.kind})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	var scene models.Scene
	for i, h := range hits {
		stop := len(response)
		if i+1 < len(hits) {
			stop = hits[i+1].pos
		}
		setSection(&scene, h.kind, cleanSection(response[h.end:stop]))
	}
	return scene, true
}

func parseByLines(response string) models.Scene {
	var (
		scene   models.Scene
		current = sectionNone
		parts   = map[section][]string{}
	)
	for _, line := range strings.Split(strings.ReplaceAll(response, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if kind, rest, ok := cutMarker(strings.TrimLeft(trimmed, "*")); ok {
			current = kind
			parts[kind] = []string{rest}
			continue
		}
		if current != sectionNone && trimmed != "" {
			parts[current] = append(parts[current], strings.TrimRight(line, " \t"))
		}
	}
	for kind, lines := range parts {
		setSection(&scene, kind, cleanSection(strings.Join(lines, "\n")))
	}
	return scene
}

func cutMarker(line string) (section, string, bool) {
	for _, m := range sectionMarkers {
		if rest, ok := strings.CutPrefix(line, m.marker); ok {
			return m.kind, strings.TrimSpace(rest), true
		}
	}
	return sectionNone, "", false
}

// cleanSection drops the bold asterisks a marker like **NARRATIVE:** leaves
// around its text.
func cleanSection(text string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(text), "*"))
}

func setSection(scene *models.Scene, kind section, text string) {
	switch kind {
	case sectionNarrative:
		scene.Narrative = text
	case sectionExplanation:
		scene.Explanation = text
	case sectionImagePrompt:
		scene.ImagePrompt = text
	}
}

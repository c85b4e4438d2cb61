package story

import (
	"strings"

	"story-rag/internal/models"
)

const fallbackSceneCount = 4

// SegmentScenes splits an outline into scene descriptions. A line starting
// with Scene, Chapter or Part (markdown heading or bold marks allowed) opens
// a new scene and the following non-empty lines belong to it; text before
// the first marker is dropped. Without any marker the non-empty lines are
// cut into four contiguous groups of near-equal size.
func SegmentScenes(outline string) []string {
	var (
		scenes  []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			scenes = append(scenes, strings.Join(current, "\n"))
		}
		current = nil
	}

	lines := nonEmptyLines(outline)
	for _, line := range lines {
		if isSceneMarker(line) {
			flush()
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	flush()

	if len(scenes) > 0 {
		return scenes
	}
	return splitEvenly(lines, fallbackSceneCount)
}

func isSceneMarker(line string) bool {
	line = strings.TrimLeft(line, "#* ")
	for _, prefix := range models.SceneMarkerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitEvenly cuts lines into at most n contiguous groups whose sizes differ
// by at most one.
func splitEvenly(lines []string, n int) []string {
	if len(lines) == 0 {
		return nil
	}
	if len(lines) < n {
		n = len(lines)
	}
	out := make([]string, 0, n)
	for j := 0; j < n; j++ {
		lo, hi := j*len(lines)/n, (j+1)*len(lines)/n
		out = append(out, strings.Join(lines[lo:hi], "\n"))
	}
	return out
}

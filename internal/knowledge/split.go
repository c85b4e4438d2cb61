package knowledge

import (
	"strings"
	"unicode"
)

// SplitChunks turns a model response into exactly n chunks. Paragraphs
// separated by blank lines come first; when there are too few, chunks are
// halved by sentence (then by word) until n exist, and as a last resort
// the list is repeated. An empty response yields nil.
func SplitChunks(response string, n int) []string {
	chunks := paragraphs(response)
	if len(chunks) == 0 || n <= 0 {
		return nil
	}

	for len(chunks) < n {
		grown := bisectPass(chunks, n)
		if len(grown) == len(chunks) {
			break
		}
		chunks = grown
	}
	for i := 0; len(chunks) < n; i++ {
		chunks = append(chunks, chunks[i])
	}
	return chunks[:n]
}

func paragraphs(text string) []string {
	var (
		out []string
		cur []string
	)
	flush := func() {
		if p := strings.TrimSpace(strings.Join(cur, "\n")); p != "" {
			out = append(out, p)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

// bisectPass halves chunks in order, stopping once target is reached.
func bisectPass(chunks []string, target int) []string {
	out := make([]string, 0, target)
	for i, c := range chunks {
		if len(out)+len(chunks)-i >= target {
			out = append(out, c)
			continue
		}
		if a, b, ok := bisect(c); ok {
			out = append(out, a, b)
		} else {
			out = append(out, c)
		}
	}
	return out
}

func bisect(chunk string) (string, string, bool) {
	if parts := sentences(chunk); len(parts) >= 2 {
		mid := len(parts) / 2
		return strings.Join(parts[:mid], " "), strings.Join(parts[mid:], " "), true
	}
	if words := strings.Fields(chunk); len(words) >= 2 {
		mid := len(words) / 2
		return strings.Join(words[:mid], " "), strings.Join(words[mid:], " "), true
	}
	return "", "", false
}

// sentences splits on '.', '!' or '?' followed by whitespace or the end.
func sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

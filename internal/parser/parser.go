package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"story-rag/internal/config"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

const (
	defaultChunkSize    = 1000 // bytes
	defaultChunkOverlap = 200  // bytes
)

// Parser turns curriculum reference documents into plain-text chunks.
type Parser struct {
	chunkSize    int
	chunkOverlap int
}

// New uses the rag chunking settings, falling back to defaults when unset.
func New(ragConfig *config.RAGConfig) *Parser {
	p := &Parser{chunkSize: defaultChunkSize, chunkOverlap: defaultChunkOverlap}
	if ragConfig != nil && ragConfig.ChunkSize > 0 {
		p.chunkSize = ragConfig.ChunkSize
		p.chunkOverlap = ragConfig.ChunkOverlap
	}
	return p
}

// ParseDocument extracts the text of a .pdf, .docx, .pptx, .xlsx, .txt or
// .md file and splits every page, slide or sheet into overlapping chunks.
func (p *Parser) ParseDocument(filePath string) ([]string, error) {
	var (
		sections []string
		err      error
	)
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".pdf":
		sections, err = parsePDF(filePath)
	case ".docx":
		sections, err = parseDOCX(filePath)
	case ".pptx":
		sections, err = parsePPTX(filePath)
	case ".xlsx":
		sections, err = parseXLSX(filePath)
	case ".md", ".markdown":
		sections, err = parseMarkdown(filePath)
	case ".txt":
		sections, err = parseText(filePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(filePath), err)
	}

	var chunks []string
	for _, section := range sections {
		chunks = append(chunks, chunkContent(section, p.chunkSize, p.chunkOverlap)...)
	}
	log.Debug().Str("file", filePath).Int("sections", len(sections)).Int("chunks", len(chunks)).Msg("Parsed document")
	return chunks, nil
}

func parsePDF(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, err
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = appendNonEmpty(pages, pageText)
	}
	return pages, nil
}

func parseDOCX(filePath string) ([]string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content := extractXMLText(r.Editable().GetContent(), "w:t", "w:p")
	return appendNonEmpty(nil, content), nil
}

func parsePPTX(filePath string) ([]string, error) {
	f, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type slide struct {
		num  int
		file *zip.File
	}
	var slides []slide
	for _, file := range f.File {
		name := strings.TrimPrefix(file.Name, "ppt/slides/slide")
		if name == file.Name || !strings.HasSuffix(name, ".xml") {
			continue
		}
		num, err := strconv.Atoi(strings.TrimSuffix(name, ".xml"))
		if err != nil {
			continue
		}
		slides = append(slides, slide{num: num, file: file})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var out []string
	for _, s := range slides {
		rc, err := s.file.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		out = appendNonEmpty(out, extractXMLText(string(data), "a:t", "a:p"))
	}
	return out, nil
}

func parseXLSX(filePath string) ([]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []string
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
		}
		var b strings.Builder
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, "\t"))
			if line != "" {
				b.WriteString(line + "\n")
			}
		}
		if b.Len() > 0 {
			sheets = append(sheets, fmt.Sprintf("Sheet: %s\n%s", sheetName, b.String()))
		}
	}
	return sheets, nil
}

func parseMarkdown(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	plain, err := markdownToText(data)
	if err != nil {
		return nil, err
	}
	return appendNonEmpty(nil, plain), nil
}

func parseText(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return appendNonEmpty(nil, string(data)), nil
}

// markdownToText drops markdown syntax and keeps the readable text, one
// block per line.
func markdownToText(src []byte) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(src))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return collapseBlankLines(b.String()), nil
}

// extractXMLText pulls the character data of every <tag> element out of
// office XML, starting a new line at each closing paragraphTag.
func extractXMLText(content, tag, paragraphTag string) string {
	var b strings.Builder
	open := "<" + tag
	closeTag := "</" + tag + ">"
	paraClose := "</" + paragraphTag + ">"
	for content != "" {
		i := strings.Index(content, open)
		p := strings.Index(content, paraClose)
		if p >= 0 && (i < 0 || p < i) {
			b.WriteString("\n")
			content = content[p+len(paraClose):]
			continue
		}
		if i < 0 {
			break
		}
		rest := content[i+len(open):]
		// <w:tab>, <w:tbl> and friends share the prefix
		if rest == "" || (rest[0] != '>' && rest[0] != ' ') {
			content = rest
			continue
		}
		gt := strings.IndexByte(rest, '>')
		if gt < 0 {
			break
		}
		if gt > 0 && rest[gt-1] == '/' {
			content = rest[gt+1:]
			continue
		}
		body := rest[gt+1:]
		end := strings.Index(body, closeTag)
		if end < 0 {
			break
		}
		b.WriteString(html.UnescapeString(body[:end]))
		content = body[end+len(closeTag):]
	}
	return collapseBlankLines(b.String())
}

func collapseBlankLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func appendNonEmpty(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}

// chunk content into chunks of roughly maxChars bytes overlapping by about
// overlapChars, never splitting a rune
func chunkContent(content string, maxChars, overlapChars int) []string {
	if maxChars <= 0 {
		return nil
	}
	if overlapChars < 0 {
		overlapChars = 0
	}
	if overlapChars >= maxChars {
		overlapChars = maxChars / 2
	}

	content = strings.TrimSpace(content)
	contentLen := len(content)
	if contentLen == 0 {
		return nil
	}
	if contentLen <= maxChars {
		return []string{content}
	}

	var chunks []string
	start := 0
	for start < contentLen {
		end := min(start+maxChars, contentLen)

		// prefer breaking on a space, newline or full stop in the last 10%
		if end < contentLen {
			lookBack := min(maxChars/10, end-start)
			for i := end - 1; i >= end-lookBack && i > start; i-- {
				if content[i] == ' ' || content[i] == '\n' || content[i] == '.' {
					end = i + 1
					break
				}
			}
			end = runeStart(content, end)
			if end <= start {
				_, size := utf8.DecodeRuneInString(content[start:])
				end = start + size
			}
		}

		if chunk := strings.TrimSpace(content[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end >= contentLen {
			break
		}

		next := runeStart(content, end-overlapChars)
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// runeStart moves i back to the first byte of the rune it falls in.
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// These are guaranteed to not conflict with any standard characters
// and pass through Goldmark unchanged.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
	fencePattern     = regexp.MustCompile("^ {0,3}(```|~~~)")
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// CommonMarkPreprocessor applies transformations before parsing.
// Highlights enables the ==text== syntax outside fenced code blocks.
type CommonMarkPreprocessor struct {
	Highlights bool
}

// PreprocessMarkdown normalizes line endings and, when enabled, converts
// ==text== to highlight placeholders.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(content string) string {
	content = normalizeLineEndings(content)
	if p.Highlights {
		content = convertHighlights(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// convertHighlights transforms ==text== to placeholder markers on every line
// that is not inside a fenced code block. Inline code is left alone as well.
func convertHighlights(content string) string {
	lines := strings.Split(content, "\n")
	fence := ""
	for i, line := range lines {
		if m := fencePattern.FindStringSubmatch(line); m != nil {
			switch fence {
			case "":
				fence = m[1]
			case m[1]:
				fence = ""
			}
			continue
		}
		if fence != "" || strings.Contains(line, "`") {
			continue
		}
		lines[i] = highlightPattern.ReplaceAllString(line, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	}
	return strings.Join(lines, "\n")
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after rendering to finalize highlight markup.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

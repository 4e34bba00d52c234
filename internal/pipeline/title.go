package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// placeholderStripper removes highlight markers from plain text.
var placeholderStripper = strings.NewReplacer(MarkStartPlaceholder, "", MarkEndPlaceholder, "")

// Title returns the plain text of the first level-1 heading: the literals of
// its descendant text nodes and autolinks, concatenated in entering order.
// Code spans, inline HTML and any later heading do not contribute. Returns ""
// when the document has no level-1 heading.
func Title(doc *Document) string {
	var (
		b         strings.Builder
		heading   ast.Node
		codeDepth int
	)

	for ev := range doc.Events() {
		if heading == nil {
			if h, ok := ev.Node.(*ast.Heading); ok && ev.Entering && h.Level == 1 {
				heading = h
			}
			continue
		}

		if ev.Node == heading {
			break
		}

		switch n := ev.Node.(type) {
		case *ast.CodeSpan:
			if ev.Entering {
				codeDepth++
			} else {
				codeDepth--
			}
		case *ast.Text:
			if ev.Entering && codeDepth == 0 {
				b.WriteString(doc.Literal(ev.Node))
			}
		case *ast.AutoLink:
			// Autolinks carry their URL as a label, not as a text child.
			if ev.Entering && codeDepth == 0 {
				b.Write(n.Label(doc.source))
			}
		}
	}

	return placeholderStripper.Replace(b.String())
}

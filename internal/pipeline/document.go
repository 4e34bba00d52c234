package pipeline

import (
	"iter"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// Event is one step of a depth-first traversal: Entering is true when the
// walk reaches Node and false when it leaves it after its children.
type Event struct {
	Node     ast.Node
	Entering bool
}

// Document is a parsed Markdown document. It is never modified after Parse
// returns, so it can be traversed and rendered any number of times.
type Document struct {
	root   ast.Node
	source []byte
}

// Events returns the document's traversal as a sequence of enter/exit events
// in document order. Each range over the sequence restarts from the root;
// breaking out of the loop stops the walk.
func (d *Document) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		_ = ast.Walk(d.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !yield(Event{Node: n, Entering: entering}) {
				return ast.WalkStop, nil
			}
			return ast.WalkContinue, nil
		})
	}
}

// Literal returns the text carried by a text node with backslash escapes,
// numeric references, and entity names resolved. Other nodes yield "".
func (d *Document) Literal(n ast.Node) string {
	t, ok := n.(*ast.Text)
	if !ok {
		return ""
	}
	value := t.Segment.Value(d.source)
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(value)
}

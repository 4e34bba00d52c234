package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML rendering failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DocumentParser turns Markdown text into a Document.
type DocumentParser interface {
	Parse(content string) *Document
}

// DocumentRenderer turns a Document into an HTML fragment.
type DocumentRenderer interface {
	Render(doc *Document) (string, error)
}

// Options configures a Markdown instance.
type Options struct {
	LazyImages bool // add loading="lazy" to every image
	Highlights bool // enable ==text== highlight syntax
	RawHTML    bool // pass raw HTML blocks and inline HTML through
}

// Markdown parses and renders documents with Goldmark (pure Go).
// A single instance is reused for every document of a run.
type Markdown struct {
	md           goldmark.Markdown
	preprocessor MarkdownPreprocessor
	highlights   bool
}

// NewMarkdown creates a Markdown instance with GFM, footnotes, and syntax highlighting.
func NewMarkdown(opts Options) *Markdown {
	parserOpts := []parser.Option{
		parser.WithAutoHeadingID(),
	}
	if opts.LazyImages {
		parserOpts = append(parserOpts, parser.WithASTTransformers(util.Prioritized(lazyImages{}, 100)))
	}

	rendererOpts := []renderer.Option{html.WithXHTML()}
	if opts.RawHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // colors come from the bundled stylesheet
				),
			),
		),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)

	return &Markdown{
		md:           md,
		preprocessor: &CommonMarkPreprocessor{Highlights: opts.Highlights},
		highlights:   opts.Highlights,
	}
}

// Parse preprocesses content and parses it into a Document.
func (m *Markdown) Parse(content string) *Document {
	source := []byte(m.preprocessor.PreprocessMarkdown(content))
	root := m.md.Parser().Parse(text.NewReader(source))
	return &Document{root: root, source: source}
}

// Render converts a Document to an HTML fragment.
func (m *Markdown) Render(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Renderer().Render(&buf, doc.source, doc.root); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	if !m.highlights {
		return buf.String(), nil
	}
	return ConvertMarkPlaceholders(buf.String()), nil
}

// lazyImages marks images for lazy loading by the browser.
type lazyImages struct{}

func (lazyImages) Transform(node *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if img, ok := n.(*ast.Image); ok && entering {
			img.SetAttributeString("loading", []byte("lazy"))
		}
		return ast.WalkContinue, nil
	})
}

// Compile-time interface checks.
var (
	_ DocumentParser        = (*Markdown)(nil)
	_ DocumentRenderer      = (*Markdown)(nil)
	_ MarkdownPreprocessor  = (*CommonMarkPreprocessor)(nil)
	_ parser.ASTTransformer = lazyImages{}
)

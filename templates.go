package md2blog

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"maps"
	texttemplate "text/template"
	"time"

	"github.com/alnah/go-md2blog/internal/assets"
)

// TemplateLoader supplies template sources by name ("layout", "page",
// "article", "index", "rss"). Both built-in loaders in internal/assets
// satisfy it.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// DateFormatter renders dates for the template helpers.
type DateFormatter interface {
	Full(t time.Time) string
	Short(t time.Time) string
	ISO(t time.Time) string
	RFC1123(t time.Time) string
}

// Site is the blog-wide data every template receives.
type Site struct {
	Title       string
	Description string
	Author      string
	BaseURL     string
	Language    string
}

// ArticleView is an article prepared for templates.
type ArticleView struct {
	Name         string // Slug
	Title        string
	Published    time.Time
	LastModified time.Time
	HTMLBody     template.HTML
	URL          string // Absolute when a base URL is configured
	GUID         string // Stable name-based UUID derived from URL
}

// ArticlePage is the data for the article template.
type ArticlePage struct {
	Site Site
	ArticleView
}

// PageData is the data for the standalone page template.
type PageData struct {
	Site     Site
	HTMLBody template.HTML
	Title    string
}

// IndexData is the data for the index template.
type IndexData struct {
	Site     Site
	Articles []ArticleView
}

// FeedData is the data for the RSS template. Updated is the newest
// modification time among the articles.
type FeedData struct {
	Site     Site
	Articles []ArticleView
	Updated  time.Time
}

// TemplateSet holds the compiled templates for one publish run.
// Helpers are bound per set, so independent sets never share state.
type TemplateSet struct {
	page    *template.Template
	article *template.Template
	index   *template.Template
	feed    *texttemplate.Template
}

// NewTemplateSet loads and compiles the five required templates.
// The page, article and index templates are each compiled against their own
// copy of the layout, so their "title" and "content" blocks do not collide.
func NewTemplateSet(loader TemplateLoader, dates DateFormatter) (TemplateSet, error) {
	if loader == nil || dates == nil {
		return TemplateSet{}, fmt.Errorf("%w: loader and date formatter are required", ErrTemplateCompile)
	}

	sources, err := assets.LoadAll(loader)
	if err != nil {
		return TemplateSet{}, fmt.Errorf("%w: %w", ErrTemplateCompile, err)
	}

	helpers := map[string]any{
		"fullDate":    dates.Full,
		"shortDate":   dates.Short,
		"isoDate":     dates.ISO,
		"rfc1123Date": dates.RFC1123,
	}

	layout, err := template.New(assets.LayoutTemplate).
		Funcs(template.FuncMap(helpers)).
		Parse(sources[assets.LayoutTemplate])
	if err != nil {
		return TemplateSet{}, fmt.Errorf("%w: %s: %w", ErrTemplateCompile, assets.LayoutTemplate, err)
	}

	var ts TemplateSet
	for name, dst := range map[string]**template.Template{
		assets.PageTemplate:    &ts.page,
		assets.ArticleTemplate: &ts.article,
		assets.IndexTemplate:   &ts.index,
	} {
		clone, err := layout.Clone()
		if err != nil {
			return TemplateSet{}, fmt.Errorf("%w: %s: %w", ErrTemplateCompile, name, err)
		}
		if *dst, err = clone.New(name).Parse(sources[name]); err != nil {
			return TemplateSet{}, fmt.Errorf("%w: %s: %w", ErrTemplateCompile, name, err)
		}
	}

	feedHelpers := texttemplate.FuncMap(maps.Clone(helpers))
	feedHelpers["xml"] = xmlEscape
	ts.feed, err = texttemplate.New(assets.FeedTemplate).Funcs(feedHelpers).Parse(sources[assets.FeedTemplate])
	if err != nil {
		return TemplateSet{}, fmt.Errorf("%w: %s: %w", ErrTemplateCompile, assets.FeedTemplate, err)
	}

	return ts, nil
}

// RenderArticle writes one article page.
func (ts TemplateSet) RenderArticle(w io.Writer, data ArticlePage) error {
	return execute(w, ts.article, data)
}

// RenderPage writes one standalone page.
func (ts TemplateSet) RenderPage(w io.Writer, data PageData) error {
	return execute(w, ts.page, data)
}

// RenderIndex writes the article index.
func (ts TemplateSet) RenderIndex(w io.Writer, data IndexData) error {
	return execute(w, ts.index, data)
}

// RenderFeed writes the RSS feed.
func (ts TemplateSet) RenderFeed(w io.Writer, data FeedData) error {
	if ts.feed == nil {
		return fmt.Errorf("%w: %s: not compiled", ErrTemplateRender, assets.FeedTemplate)
	}
	var buf bytes.Buffer
	if err := ts.feed.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTemplateRender, assets.FeedTemplate, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// execute renders into a buffer first so a failing template never leaves
// partial output in w.
func execute(w io.Writer, t *template.Template, data any) error {
	if t == nil {
		return fmt.Errorf("%w: template not compiled", ErrTemplateRender)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTemplateRender, t.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// xmlEscape escapes any value's string form for XML character data.
// Rendered bodies arrive as template.HTML and are escaped like plain text.
func xmlEscape(v any) string {
	return texttemplate.HTMLEscapeString(fmt.Sprint(v))
}

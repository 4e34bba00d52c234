package md2blog

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2blog/internal/config"
	"github.com/alnah/go-md2blog/internal/fileutil"
	"github.com/alnah/go-md2blog/internal/pipeline"
)

// writePage renders one standalone markdown page through the page template.
// An empty configured title falls back to the page's first heading.
func (b *build) writePage(page config.PageConfig) error {
	src := filepath.Join(b.pagesDir, filepath.FromSlash(page.Source))
	content, err := os.ReadFile(src) // #nosec G304 -- page sources are validated relative paths
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadPage, page.Source, err)
	}

	doc := b.p.markdown.Parse(string(content))
	body, err := b.p.markdown.Render(doc)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRenderMarkdown, page.Source, err)
	}

	title := page.Title
	if title == "" {
		title = pipeline.Title(doc)
	}

	var sb strings.Builder
	if err := b.templates.RenderPage(&sb, PageData{
		Site:     b.p.site,
		HTMLBody: template.HTML(body), // #nosec G203 -- rendered from the site's own markdown
		Title:    title,
	}); err != nil {
		return err
	}

	dst := filepath.Join(b.outputDir, filepath.FromSlash(page.Output))
	if err := fileutil.EnsureDir(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return b.write(dst, sb.String())
}

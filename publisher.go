package md2blog

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-md2blog/internal/assets"
	"github.com/alnah/go-md2blog/internal/config"
	"github.com/alnah/go-md2blog/internal/dateutil"
	"github.com/alnah/go-md2blog/internal/fileutil"
	"github.com/alnah/go-md2blog/internal/logfields"
	"github.com/alnah/go-md2blog/internal/pipeline"
)

// Fixed names inside the output directory.
const (
	articlePageName = "index.html"
	indexPageName   = "index.html"
	feedName        = "rss.xml"
	faviconName     = "favicon.ico"
	stylesDirName   = "styles"
	bundleName      = "bundle.min.css"
	fontsDirName    = "fonts"
	fontExtension   = ".woff"
)

// Report summarizes a completed publish run.
type Report struct {
	Articles int           // Article pages written
	Assets   int           // Article images copied
	Styles   int           // Stylesheets bundled
	Fonts    int           // Font files copied
	Pages    int           // Standalone pages written
	Files    int           // Every file written or copied
	Duration time.Duration // Wall time of the run
}

// Publisher builds the static site for one source directory.
// Create with NewPublisher and call Publish; a Publisher can publish
// repeatedly, each run starting from the files on disk.
type Publisher struct {
	cfg       *config.Config
	sourceDir string
	outputDir string
	logger    *slog.Logger
	minifier  Minifier
	loader    TemplateLoader
	markdown  *pipeline.Markdown
	dates     *dateutil.Formatter
	site      Site

	templateDir string // set once templates are read from disk
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithConfig replaces the default site configuration.
func WithConfig(cfg *config.Config) Option {
	return func(p *Publisher) {
		if cfg != nil {
			p.cfg = cfg
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSourceDir sets the directory relative config paths are resolved
// against. Defaults to the working directory.
func WithSourceDir(dir string) Option {
	return func(p *Publisher) {
		p.sourceDir = dir
	}
}

// WithOutputDir overrides paths.output.
func WithOutputDir(dir string) Option {
	return func(p *Publisher) {
		p.outputDir = dir
	}
}

// WithMinifier replaces the CSS minifier.
func WithMinifier(m Minifier) Option {
	return func(p *Publisher) {
		if m != nil {
			p.minifier = m
		}
	}
}

// WithTemplateLoader replaces the template source selected by the config.
func WithTemplateLoader(loader TemplateLoader) Option {
	return func(p *Publisher) {
		p.loader = loader
	}
}

// NewPublisher validates the configuration and prepares the markdown
// renderer and date helpers. No files are read until Publish.
func NewPublisher(opts ...Option) (*Publisher, error) {
	p := &Publisher{
		cfg:       config.DefaultConfig(),
		sourceDir: ".",
		logger:    slog.New(slog.DiscardHandler),
		minifier:  NewCSSMinifier(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	if p.sourceDir == "" {
		p.sourceDir = "."
	}
	absSource, err := filepath.Abs(p.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSourceDir, err)
	}
	if !fileutil.DirExists(absSource) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSourceDir, absSource)
	}
	p.sourceDir = absSource

	if p.outputDir == "" {
		p.outputDir = p.cfg.Paths.Output
	}
	p.outputDir = p.resolve(p.outputDir)
	if p.outputDir == p.sourceDir {
		return nil, fmt.Errorf("%w: output directory is the source directory", ErrInvalidSourceDir)
	}

	p.dates, err = dateutil.NewFormatter(p.cfg.Site.Locale, p.cfg.Dates.Full, p.cfg.Dates.Short)
	if err != nil {
		return nil, err
	}

	p.markdown = pipeline.NewMarkdown(pipeline.Options{
		LazyImages: p.cfg.Markdown.LazyImages,
		Highlights: p.cfg.Markdown.Highlights,
		RawHTML:    p.cfg.Markdown.RawHTML,
	})

	p.site = Site{
		Title:       p.cfg.Site.Title,
		Description: p.cfg.Site.Description,
		Author:      p.cfg.Site.Author,
		BaseURL:     strings.TrimSuffix(p.cfg.Site.BaseURL, "/"),
		Language:    p.cfg.Site.Locale,
	}

	return p, nil
}

// OutputDir returns the resolved output directory.
func (p *Publisher) OutputDir() string {
	return p.outputDir
}

// TemplateDir returns the directory the last Publish read templates from,
// or "" when it used the built-in or an injected template set.
func (p *Publisher) TemplateDir() string {
	return p.templateDir
}

// resolve anchors a relative config path at the source directory.
func (p *Publisher) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.sourceDir, path)
}

// build is the state of a single Publish call.
type build struct {
	p          *Publisher
	contentDir string
	pagesDir   string
	outputDir  string
	templates  TemplateSet
	registry   *Registry
	views      []ArticleView
	report     *Report
}

// Publish runs the pipeline in its fixed order:
//
//  1. compile templates
//  2. discover and load articles
//  3. write article pages and copy their images
//  4. bundle styles
//  5. copy fonts
//  6. copy the favicon
//  7. write the RSS feed
//  8. write standalone pages
//  9. write the index
//
// The context is checked before each step; cancellation stops the run
// without removing what was already written. Any failure aborts the run.
func (p *Publisher) Publish(ctx context.Context) (*Report, error) {
	start := time.Now()
	b := &build{
		p:          p,
		contentDir: p.resolve(p.cfg.Paths.Content),
		pagesDir:   p.resolve(p.cfg.Paths.Pages),
		outputDir:  p.outputDir,
		report:     &Report{},
	}

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"templates", b.loadTemplates},
		{"discover", b.loadArticles},
		{"articles", b.writeArticles},
		{"styles", b.writeStyles},
		{"fonts", b.copyFonts},
		{"favicon", b.copyFavicon},
		{"feed", b.writeFeed},
		{"pages", b.writePages},
		{"index", b.writeIndex},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("publish stopped before %s: %w", step.name, err)
		}
		stepStart := time.Now()
		if err := step.run(ctx); err != nil {
			p.logger.Error("publish failed", logfields.Stage(step.name), logfields.Error(err))
			return nil, err
		}
		p.logger.Info("stage complete", logfields.Stage(step.name), logfields.Duration(time.Since(stepStart)))
	}

	b.report.Duration = time.Since(start)
	p.logger.Info("site published",
		logfields.Path(p.outputDir),
		slog.Int("articles", b.report.Articles),
		slog.Int("files", b.report.Files),
		logfields.Duration(b.report.Duration))
	return b.report, nil
}

func (b *build) loadTemplates(context.Context) error {
	b.p.templateDir = ""
	loader := b.p.loader
	if loader == nil {
		if b.p.cfg.Templates.Builtin {
			loader = assets.NewEmbeddedLoader()
		} else {
			dir := b.p.resolve(b.p.cfg.Paths.Templates)
			b.p.templateDir = dir
			fsLoader, err := assets.NewFilesystemLoader(dir)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrTemplateCompile, err)
			}
			b.p.templateDir = fsLoader.BasePath()
			loader = fsLoader
		}
	}

	ts, err := NewTemplateSet(loader, b.p.dates)
	if err != nil {
		return err
	}
	b.templates = ts
	return nil
}

func (b *build) loadArticles(context.Context) error {
	loader := &articleLoader{parser: b.p.markdown, logger: b.p.logger}
	registry, err := discoverArticles(b.contentDir, loader)
	if err != nil {
		return err
	}
	b.registry = registry
	b.p.logger.Info("articles loaded", logfields.Count(registry.Len()))
	return nil
}

func (b *build) writeArticles(ctx context.Context) error {
	if err := fileutil.EnsureDir(b.outputDir); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	copier := &assetCopier{contentDir: b.contentDir, logger: b.p.logger}
	b.views = make([]ArticleView, 0, b.registry.Len())

	for _, a := range b.registry.articles {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("publish stopped at %s: %w", a.slug, err)
		}

		dir := filepath.Join(b.outputDir, a.slug)
		if err := fileutil.EnsureDir(dir); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		body, err := b.p.markdown.Render(a.body)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRenderMarkdown, a.slug, err)
		}
		view := b.p.newArticleView(a, body)

		var sb strings.Builder
		if err := b.templates.RenderArticle(&sb, ArticlePage{Site: b.p.site, ArticleView: view}); err != nil {
			return fmt.Errorf("%s: %w", a.slug, err)
		}
		if err := b.write(filepath.Join(dir, articlePageName), sb.String()); err != nil {
			return err
		}

		copied, err := copier.copyAssets(a.body, dir)
		b.report.Assets += copied
		b.report.Files += copied
		if err != nil {
			return fmt.Errorf("%s: %w", a.slug, err)
		}

		b.views = append(b.views, view)
		b.report.Articles++
		b.p.logger.Debug("article written", logfields.Slug(a.slug), logfields.Count(copied))
	}
	return nil
}

func (b *build) writeStyles(context.Context) error {
	dir := filepath.Join(b.outputDir, stylesDirName)
	if err := fileutil.EnsureDir(dir); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	bundle, count, err := bundleStyles(b.p.resolve(b.p.cfg.Paths.Styles), b.p.minifier)
	if err != nil {
		return err
	}
	b.report.Styles = count
	return b.write(filepath.Join(dir, bundleName), bundle)
}

func (b *build) copyFonts(context.Context) error {
	dir := filepath.Join(b.outputDir, fontsDirName)
	if err := fileutil.EnsureDir(dir); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	fontsDir := b.p.resolve(b.p.cfg.Paths.Fonts)
	names, err := fileutil.ListFiles(fontsDir, fontExtension)
	if err != nil {
		return fmt.Errorf("%w: listing %s: %w", ErrCopyAsset, fontsDir, err)
	}
	for _, name := range names {
		if err := b.copyFile(filepath.Join(fontsDir, name), filepath.Join(dir, name)); err != nil {
			return err
		}
		b.report.Fonts++
	}
	return nil
}

func (b *build) copyFavicon(context.Context) error {
	return b.copyFile(b.p.resolve(b.p.cfg.Paths.Favicon), filepath.Join(b.outputDir, faviconName))
}

func (b *build) writeFeed(context.Context) error {
	var updated time.Time
	for _, v := range b.views {
		if v.LastModified.After(updated) {
			updated = v.LastModified
		}
	}

	var sb strings.Builder
	if err := b.templates.RenderFeed(&sb, FeedData{Site: b.p.site, Articles: b.views, Updated: updated}); err != nil {
		return err
	}
	return b.write(filepath.Join(b.outputDir, feedName), sb.String())
}

func (b *build) writePages(ctx context.Context) error {
	for _, page := range b.p.cfg.Pages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("publish stopped at %s: %w", page.Source, err)
		}
		if err := b.writePage(page); err != nil {
			return err
		}
		b.report.Pages++
	}
	return nil
}

func (b *build) writeIndex(context.Context) error {
	var sb strings.Builder
	if err := b.templates.RenderIndex(&sb, IndexData{Site: b.p.site, Articles: b.views}); err != nil {
		return err
	}
	return b.write(filepath.Join(b.outputDir, indexPageName), sb.String())
}

// write stores content at path atomically and counts it.
func (b *build) write(path, content string) error {
	if err := fileutil.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	b.report.Files++
	b.p.logger.Debug("wrote file", logfields.Path(path))
	return nil
}

// copyFile copies src to dst byte-for-byte and counts it.
func (b *build) copyFile(src, dst string) error {
	if err := fileutil.CopyFile(src, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyAsset, err)
	}
	b.report.Files++
	b.p.logger.Debug("copied file", logfields.Path(dst))
	return nil
}

// newArticleView prepares an article for templates. The feed GUID is a
// name-based UUID of the article URL, so it is stable across runs.
func (p *Publisher) newArticleView(a *Article, body string) ArticleView {
	link := p.site.BaseURL + "/" + url.PathEscape(a.slug) + "/"
	return ArticleView{
		Name:         a.slug,
		Title:        a.title,
		Published:    a.published,
		LastModified: a.lastModified,
		HTMLBody:     template.HTML(body), // #nosec G203 -- rendered from the site's own markdown
		URL:          link,
		GUID:         uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(),
	}
}

package md2blog

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/alnah/go-md2blog/internal/fileutil"
	"github.com/alnah/go-md2blog/internal/logfields"
)

// Registry is the ordered set of articles for one publish run: newest first,
// equal dates ordered by slug. Every consumer reads this one sequence.
type Registry struct {
	articles []*Article
}

// newRegistry orders articles and rejects duplicate slugs, which would
// share an output directory.
func newRegistry(articles []*Article) (*Registry, error) {
	seen := make(map[string]string, len(articles))
	for _, a := range articles {
		if prev, ok := seen[a.slug]; ok {
			return nil, fmt.Errorf("%w: %q (%s and %s)", ErrDuplicateSlug, a.slug, prev, a.sourcePath)
		}
		seen[a.slug] = a.sourcePath
	}

	sorted := slices.Clone(articles)
	slices.SortStableFunc(sorted, func(a, b *Article) int {
		if c := b.published.Compare(a.published); c != 0 {
			return c
		}
		return cmp.Compare(a.slug, b.slug)
	})
	return &Registry{articles: sorted}, nil
}

// discoverArticles loads every article in dir. The listing is
// non-recursive and only considers regular *.md files.
func discoverArticles(dir string, loader *articleLoader) (*Registry, error) {
	names, err := fileutil.ListFiles(dir, ArticleExtension)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", ErrReadArticle, dir, err)
	}

	articles := make([]*Article, 0, len(names))
	for _, name := range names {
		a, err := loader.load(dir, name)
		if err != nil {
			return nil, err
		}
		if a == nil {
			continue
		}
		loader.logger.Debug("loaded article",
			logfields.Slug(a.slug), slog.String("title", a.title))
		articles = append(articles, a)
	}

	return newRegistry(articles)
}

// Articles returns the ordered articles. The slice is a copy.
func (r *Registry) Articles() []*Article {
	return slices.Clone(r.articles)
}

// Len returns the number of articles.
func (r *Registry) Len() int {
	return len(r.articles)
}

package md2blog

import "strings"

// ArticleExtension is the suffix of article and page sources.
const ArticleExtension = ".md"

// FileMeta is the metadata encoded in an article file name.
type FileMeta struct {
	DateText string // Everything before the first "_"
	Slug     string // Everything after it
}

// ParseFilename splits "<date>_<slug>.md" on the first underscore.
// It reports false for names that are not articles: another extension, no
// underscore, or an empty date or slug. Such files are expected (drafts,
// README.md, pages) and are skipped without error.
//
// The date text is not validated here; see ParsePublishDate.
func ParseFilename(name string) (FileMeta, bool) {
	stem, ok := strings.CutSuffix(name, ArticleExtension)
	if !ok {
		return FileMeta{}, false
	}
	date, slug, found := strings.Cut(stem, "_")
	if !found || date == "" || slug == "" {
		return FileMeta{}, false
	}
	return FileMeta{DateText: date, Slug: slug}, true
}

package md2blog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2blog/internal/dateutil"
	"github.com/alnah/go-md2blog/internal/fileutil"
	"github.com/alnah/go-md2blog/internal/logfields"
	"github.com/alnah/go-md2blog/internal/pipeline"
)

// articleLoader turns qualifying content files into Articles.
type articleLoader struct {
	parser pipeline.DocumentParser
	logger *slog.Logger
}

// load reads and parses one content file. It returns nil without error when
// the file is not an article: a non-matching name, or a date prefix that is
// not a calendar date. Read failures are fatal.
func (l *articleLoader) load(dir, name string) (*Article, error) {
	meta, ok := ParseFilename(name)
	if !ok {
		l.logger.Debug("skipping non-article file", logfields.File(name))
		return nil, nil
	}

	// "." and ".." would publish into or above the output root.
	if !fileutil.IsPathUnderDir(meta.Slug) {
		l.logger.Warn("skipping article with unusable slug",
			logfields.File(name), logfields.Slug(meta.Slug))
		return nil, nil
	}

	published, err := dateutil.ParsePublishDate(meta.DateText)
	if err != nil {
		l.logger.Warn("skipping article with invalid date",
			logfields.File(name), logfields.Reason(err.Error()))
		return nil, nil
	}

	path := filepath.Join(dir, name)
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from directory listing
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadArticle, name, err)
	}

	doc := l.parser.Parse(string(content))

	return &Article{
		slug:         meta.Slug,
		title:        pipeline.Title(doc),
		body:         doc,
		published:    published,
		lastModified: modTime(path, published),
		sourcePath:   path,
	}, nil
}

// modTime returns the file's modification time, or fallback when it is
// unavailable.
func modTime(path string, fallback time.Time) time.Time {
	info, err := os.Stat(path)
	if err != nil || info.ModTime().IsZero() {
		return fallback
	}
	return info.ModTime()
}

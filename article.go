package md2blog

import (
	"time"

	"github.com/alnah/go-md2blog/internal/pipeline"
)

// Article is one published post. It is immutable once loaded; the parsed
// body is kept so it can be walked for images and rendered without
// re-reading the file.
type Article struct {
	slug         string
	title        string
	body         *pipeline.Document
	published    time.Time
	lastModified time.Time
	sourcePath   string
}

// Slug is the article's identifier and output directory name.
func (a *Article) Slug() string { return a.slug }

// Title is the plain text of the first level-1 heading, or "".
func (a *Article) Title() string { return a.title }

// Body returns the parsed document.
func (a *Article) Body() *pipeline.Document { return a.body }

// Published is the date from the file name.
func (a *Article) Published() time.Time { return a.published }

// LastModified is the source file's modification time, or Published when
// the filesystem cannot report one.
func (a *Article) LastModified() time.Time { return a.lastModified }

// SourcePath is the path the article was read from.
func (a *Article) SourcePath() string { return a.sourcePath }

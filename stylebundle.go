package md2blog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"

	"github.com/alnah/go-md2blog/internal/fileutil"
)

const (
	cssMediaType = "text/css"
	cssExtension = ".css"
)

// Minifier compresses a stylesheet.
type Minifier interface {
	MinifyCSS(src string) (string, error)
}

// CSSMinifier minifies CSS with tdewolff/minify. Top-level comments opened
// with "/*!" (licenses, attributions) are kept verbatim.
type CSSMinifier struct {
	m *minify.M
}

// NewCSSMinifier creates a CSSMinifier.
func NewCSSMinifier() *CSSMinifier {
	m := minify.New()
	m.AddFunc(cssMediaType, css.Minify)
	return &CSSMinifier{m: m}
}

// MinifyCSS minifies src, passing preserved comments through unchanged.
func (c *CSSMinifier) MinifyCSS(src string) (string, error) {
	var b strings.Builder
	for _, seg := range splitPreservedComments(src) {
		if seg.preserved {
			b.WriteString(seg.text)
			continue
		}
		out, err := c.m.String(cssMediaType, seg.text)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMinify, err)
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

type cssSegment struct {
	text      string
	preserved bool
}

// splitPreservedComments cuts src around "/*! ... */" comments found outside
// rule blocks and string literals. Comments nested in a block stay in their
// segment and are dropped by the minifier.
func splitPreservedComments(src string) []cssSegment {
	var segs []cssSegment
	start, depth := 0, 0
	var quote byte

	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case quote != 0:
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '{':
			depth++
		case ch == '}':
			if depth > 0 {
				depth--
			}
		case ch == '/' && strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				i = len(src)
				continue
			}
			end += i + 4
			if depth == 0 && strings.HasPrefix(src[i:], "/*!") {
				if i > start {
					segs = append(segs, cssSegment{text: src[start:i]})
				}
				segs = append(segs, cssSegment{text: src[i:end], preserved: true})
				start = end
			}
			i = end - 1
		}
	}
	if start < len(src) {
		segs = append(segs, cssSegment{text: src[start:]})
	}
	return segs
}

// bundleStyles reads every *.css file in dir in ascending name order, joins
// them with newlines and minifies the result once.
// It returns the bundle and the number of source files.
func bundleStyles(dir string, minifier Minifier) (string, int, error) {
	names, err := fileutil.ListFiles(dir, cssExtension)
	if err != nil {
		return "", 0, fmt.Errorf("%w: listing %s: %w", ErrStyleBundle, dir, err)
	}

	sources := make([]string, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- path comes from directory listing
		if err != nil {
			return "", 0, fmt.Errorf("%w: %s: %w", ErrStyleBundle, name, err)
		}
		sources = append(sources, string(content))
	}

	bundle, err := minifier.MinifyCSS(strings.Join(sources, "\n"))
	if err != nil {
		if errors.Is(err, ErrMinify) {
			return "", 0, err
		}
		return "", 0, fmt.Errorf("%w: %w", ErrMinify, err)
	}
	return bundle, len(names), nil
}

// Compile-time interface check.
var _ Minifier = (*CSSMinifier)(nil)

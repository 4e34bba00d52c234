package md2blog

import (
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2blog/internal/fileutil"
	"github.com/alnah/go-md2blog/internal/logfields"
	"github.com/alnah/go-md2blog/internal/pipeline"
)

// assetCopier copies the local images an article references into its
// output directory, keeping their relative paths.
type assetCopier struct {
	contentDir string
	logger     *slog.Logger
}

// copyAssets walks doc in document order. External URLs are left alone;
// every other destination is copied from contentDir to articleDir at the
// same relative path. Repeated references are copied again.
// It returns the number of files copied.
func (c *assetCopier) copyAssets(doc *pipeline.Document, articleDir string) (int, error) {
	copied := 0
	for _, dest := range pipeline.ImageDestinations(doc) {
		if fileutil.IsURL(dest) {
			c.logger.Debug("skipping external image", logfields.Path(dest))
			continue
		}

		rel, err := localAssetPath(dest)
		if err != nil {
			return copied, err
		}

		target := filepath.Join(articleDir, rel)
		if err := fileutil.EnsureDir(filepath.Dir(target)); err != nil {
			return copied, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		if err := fileutil.CopyFile(filepath.Join(c.contentDir, rel), target); err != nil {
			return copied, fmt.Errorf("%w: %s: %w", ErrCopyAsset, dest, err)
		}

		c.logger.Debug("copied image", logfields.Path(rel))
		copied++
	}
	return copied, nil
}

// localAssetPath turns an image destination into a clean relative file path.
// Query strings and fragments are dropped, percent-encoding is decoded, and a
// site-root path ("/img/x.png") is taken relative to the content directory.
func localAssetPath(dest string) (string, error) {
	path := dest
	if u, err := url.Parse(dest); err == nil && u.Scheme == "" && u.Host == "" {
		path = u.Path
	} else if decoded, err := url.PathUnescape(dest); err == nil {
		path = decoded
	}

	rel := strings.TrimLeft(path, "/")
	if !fileutil.IsPathUnderDir(rel) {
		return "", fmt.Errorf("%w: %q", ErrAssetPath, dest)
	}
	return filepath.Clean(filepath.FromSlash(rel)), nil
}

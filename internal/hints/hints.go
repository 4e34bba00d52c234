// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the user-level location if it was searched
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-md2blog/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound returns hints for a missing template file.
func ForTemplateNotFound(dir string) string {
	hint := "create layout, page, article, index and rss .tmpl files"
	if dir != "" {
		hint += " in " + dir
	}
	return formatHints([]string{hint, "or set templates.builtin: true in md2blog.yaml"})
}

// ForMissingInput returns hints when a conventional input (styles, fonts,
// favicon, a page source) does not exist.
func ForMissingInput(path string) string {
	hints := []string{"run md2blog from the blog's root directory"}
	if path != "" {
		hints = append(hints, "or point paths in md2blog.yaml at "+filepath.Base(path))
	}
	return formatHints(hints)
}

// ForAssetPath returns hints for images referencing files outside the content tree.
func ForAssetPath() string {
	return format("image paths resolve against the content directory and must not leave it")
}

// ForDuplicateSlug returns hints for two articles sharing a slug.
func ForDuplicateSlug() string {
	return format("rename one file: articles are named YYYY-MM-DD_slug.md and slugs must be unique")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

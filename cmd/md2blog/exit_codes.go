package main

import (
	"errors"
	"os"

	md2blog "github.com/alnah/go-md2blog"
	"github.com/alnah/go-md2blog/internal/assets"
	"github.com/alnah/go-md2blog/internal/config"
	"github.com/alnah/go-md2blog/internal/dateutil"
)

// Exit codes for md2blog CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site published
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or templates
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2blog.ErrInvalidSourceDir) ||
		errors.Is(err, md2blog.ErrReadArticle) ||
		errors.Is(err, md2blog.ErrReadPage) ||
		errors.Is(err, md2blog.ErrWriteOutput) ||
		errors.Is(err, md2blog.ErrCopyAsset) ||
		errors.Is(err, md2blog.ErrStyleBundle) {
		return ExitIO
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrConflictFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrInputTooLarge) ||
		errors.Is(err, dateutil.ErrUnsupportedLocale) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, md2blog.ErrTemplateCompile) ||
		errors.Is(err, md2blog.ErrTemplateRender) ||
		errors.Is(err, md2blog.ErrDuplicateSlug) ||
		errors.Is(err, md2blog.ErrAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}

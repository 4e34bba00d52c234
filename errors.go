package md2blog

import "errors"

// Sentinel errors for publish operations.
// Every one of them aborts the run: a partially published site is worse
// than none.
var (
	ErrInvalidSourceDir = errors.New("invalid source directory")
	ErrReadArticle      = errors.New("failed to read article")
	ErrReadPage         = errors.New("failed to read page")
	ErrDuplicateSlug    = errors.New("duplicate article slug")
	ErrRenderMarkdown   = errors.New("markdown rendering failed")
	ErrWriteOutput      = errors.New("failed to write output")

	// Asset errors.
	ErrAssetPath = errors.New("image path outside content directory")
	ErrCopyAsset = errors.New("failed to copy asset")

	// Template errors.
	ErrTemplateCompile = errors.New("template compilation failed")
	ErrTemplateRender  = errors.New("template rendering failed")

	// Stylesheet errors.
	ErrStyleBundle = errors.New("style bundling failed")
	ErrMinify      = errors.New("CSS minification failed")
)

// Package pipeline implements the Markdown side of the publishing pipeline.
//
// This package handles parsing and rendering stages:
//   - Markdown preprocessing (line normalization, optional highlight syntax)
//   - Parsing into an immutable Document backed by a Goldmark AST
//   - Depth-first enter/exit event traversal over a Document
//   - Title and image destination extraction
//   - Document to HTML fragment rendering via Goldmark
//
// A Document is walked several times per article (title, images, render).
// Every walk starts again from the root and none of them mutate the tree, so
// walks are independent and always observe nodes in document order.
package pipeline

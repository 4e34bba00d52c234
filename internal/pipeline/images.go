package pipeline

import "github.com/yuin/goldmark/ast"

// ImageDestinations returns the destination of every image node in document
// order, duplicates included.
func ImageDestinations(doc *Document) []string {
	var dests []string
	for ev := range doc.Events() {
		if img, ok := ev.Node.(*ast.Image); ok && ev.Entering {
			dests = append(dests, string(img.Destination))
		}
	}
	return dests
}

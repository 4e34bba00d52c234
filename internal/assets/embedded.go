package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*.tmpl
var templates embed.FS

// EmbeddedLoader loads the built-in templates.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a built-in template by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateTemplateName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + TemplateExtension)
	if err != nil {
		return "", fmt.Errorf("%w: %q (built-in)", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)

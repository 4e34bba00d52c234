package assets

// Template names every loader must provide.
const (
	LayoutTemplate  = "layout"
	PageTemplate    = "page"
	ArticleTemplate = "article"
	IndexTemplate   = "index"
	FeedTemplate    = "rss"
)

// TemplateExtension is appended to a template name to form its file name.
const TemplateExtension = ".tmpl"

// RequiredTemplates lists the templates a publish run cannot do without.
var RequiredTemplates = []string{
	LayoutTemplate,
	PageTemplate,
	ArticleTemplate,
	IndexTemplate,
	FeedTemplate,
}

// AssetLoader defines the contract for loading templates.
// Implementations may load from embedded assets, a directory on disk, etc.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidTemplateName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// LoadAll loads every required template from loader, keyed by name.
// The first missing or unreadable template aborts the load.
func LoadAll(loader AssetLoader) (map[string]string, error) {
	sources := make(map[string]string, len(RequiredTemplates))
	for _, name := range RequiredTemplates {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		sources[name] = content
	}
	return sources, nil
}

// Package assets loads the named page templates used to publish a site.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates compiled into the binary
//	    └── FilesystemLoader  - templates from the site's template directory
//
// A site normally ships its own templates and uses FilesystemLoader. The
// embedded set is a complete, minimal theme for new sites and tests.
//
// # Template Names
//
// Every template set provides the same five templates. The page, article
// and index templates render "layout" and fill its "title" and "content"
// blocks:
//
//	{basePath}/
//	├── layout.tmpl    # shared page shell, defines "layout"
//	├── page.tmpl      # standalone pages (htmlBody, title)
//	├── article.tmpl   # one article (htmlBody, name, title, published, lastModified)
//	├── index.tmpl     # article list
//	└── rss.tmpl       # RSS 2.0 feed
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets

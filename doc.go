// Package md2blog publishes a directory of date-named Markdown articles as a
// static website.
//
// # Quick Start
//
// Publish the blog in the current directory with the conventional layout:
//
//	pub, err := md2blog.NewPublisher()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := pub.Publish(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Articles, "articles published")
//
// # Source Layout
//
// Articles are named "<date>_<slug>.md", for example "2024-01-01_hello.md".
// Files that do not follow the convention are ignored. By default the
// source directory contains:
//
//	./
//	├── 2024-01-01_hello.md   # articles
//	├── impressum.md          # standalone pages
//	├── favicon.ico
//	├── fonts/*.woff
//	├── styles/*.css
//	└── templates/{layout,page,article,index,rss}.tmpl
//
// # Output Layout
//
//	public/<slug>/index.html
//	public/<slug>/<relative path of each local image>
//	public/styles/bundle.min.css
//	public/fonts/<name>.woff
//	public/favicon.ico
//	public/<page>.html
//	public/rss.xml
//	public/index.html
//
// # Publishing Pipeline
//
// Publish runs a fixed sequence. Articles are sorted once, newest first
// with ties broken by slug, and that order feeds the article pages, the
// feed and the index:
//
//  1. Compile templates (layout, page, article, index, rss)
//  2. Discover and load articles, extracting titles from the first heading
//  3. Write each article page and copy its local images
//  4. Bundle and minify styles
//  5. Copy fonts and the favicon
//  6. Write the RSS feed, standalone pages and the index
//
// Any read, write, template or minifier failure aborts the run.
//
// # Configuration
//
// Use functional options to customize the publisher:
//
//	pub, err := md2blog.NewPublisher(
//	    md2blog.WithSourceDir("/path/to/blog"),
//	    md2blog.WithOutputDir("/var/www/blog"),
//	    md2blog.WithLogger(slog.Default()),
//	)
//
// The md2blog command additionally reads an optional md2blog.yaml file.
package md2blog

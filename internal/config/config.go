// Package config loads and validates the optional md2blog.yaml site file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-md2blog/internal/dateutil"
	"github.com/alnah/go-md2blog/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
	ErrInputTooLarge   = errors.New("config exceeds maximum size")
)

// DefaultName is the config name looked up when no --config flag is given.
const DefaultName = "md2blog"

// MaxInputSize limits config files to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxAuthorLength      = 100
	MaxURLLength         = 2048 // Browser limit
	MaxLocaleLength      = 35   // BCP 47 practical maximum
	MaxPathLength        = 4096
	MaxPageTitleLength   = 200
)

// Config holds everything a publish run can be told about a site.
// The zero-argument defaults reproduce the conventional layout: articles and
// pages in the working directory, templates/, styles/, fonts/, favicon.ico,
// and output in public/.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Paths     PathsConfig     `yaml:"paths"`
	Pages     []PageConfig    `yaml:"pages"`
	Dates     DatesConfig     `yaml:"dates"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Templates TemplatesConfig `yaml:"templates"`
}

// SiteConfig describes the blog itself. Used by templates and the feed.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	BaseURL     string `yaml:"baseURL"` // Absolute http(s) URL, no trailing slash needed
	Locale      string `yaml:"locale"`  // BCP 47 tag, e.g. "de-DE"
}

// PathsConfig locates every input and the output root.
// Relative paths are resolved against the source directory.
type PathsConfig struct {
	Content   string `yaml:"content"`   // Dated articles
	Pages     string `yaml:"pages"`     // Standalone page sources
	Templates string `yaml:"templates"` // Ignored when templates.builtin is set
	Styles    string `yaml:"styles"`
	Fonts     string `yaml:"fonts"`
	Favicon   string `yaml:"favicon"`
	Output    string `yaml:"output"`
}

// PageConfig maps one standalone markdown page to its output file.
type PageConfig struct {
	Source string `yaml:"source"` // e.g. "impressum.md"
	Output string `yaml:"output"` // e.g. "impressum.html", relative to the output root
	Title  string `yaml:"title"`
}

// DatesConfig overrides the locale's date layouts with ParseDateFormat tokens.
type DatesConfig struct {
	Full  string `yaml:"full"`  // Empty = locale default
	Short string `yaml:"short"` // Empty = locale default
}

// MarkdownConfig toggles optional rendering features.
type MarkdownConfig struct {
	LazyImages bool `yaml:"lazyImages"` // loading="lazy" on every image
	Highlights bool `yaml:"highlights"` // ==text== becomes <mark>text</mark>
	RawHTML    bool `yaml:"rawHTML"`    // Pass inline HTML through unescaped
}

// TemplatesConfig selects the template source.
type TemplatesConfig struct {
	Builtin bool `yaml:"builtin"` // Use the embedded template set
}

// DefaultConfig returns the conventional site layout.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Locale: dateutil.DefaultLocale,
		},
		Paths: PathsConfig{
			Content:   ".",
			Pages:     ".",
			Templates: "templates",
			Styles:    "styles",
			Fonts:     "fonts",
			Favicon:   "favicon.ico",
			Output:    "public",
		},
		Pages: []PageConfig{
			{Source: "impressum.md", Output: "impressum.html", Title: "Impressum und Datenschutz"},
		},
	}
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., tests, library users).
func (c *Config) Validate() error {
	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePages(); err != nil {
		return err
	}

	// Date formats are checked by building the formatter they configure.
	if _, err := dateutil.NewFormatter(c.Site.Locale, c.Dates.Full, c.Dates.Short); err != nil {
		return fmt.Errorf("%w: dates: %v", ErrInvalidField, err)
	}
	return nil
}

func (c *Config) validateSite() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.description", c.Site.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.author", c.Site.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.locale", c.Site.Locale, MaxLocaleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.baseURL", c.Site.BaseURL, MaxURLLength); err != nil {
		return err
	}

	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: site.baseURL: must be an absolute http(s) URL, got %q", ErrInvalidField, c.Site.BaseURL)
		}
	}
	return nil
}

func (c *Config) validatePaths() error {
	fields := []struct {
		name  string
		value string
	}{
		{"paths.content", c.Paths.Content},
		{"paths.pages", c.Paths.Pages},
		{"paths.templates", c.Paths.Templates},
		{"paths.styles", c.Paths.Styles},
		{"paths.fonts", c.Paths.Fonts},
		{"paths.favicon", c.Paths.Favicon},
		{"paths.output", c.Paths.Output},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s: required", ErrInvalidField, f.name)
		}
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}
	if filepath.Clean(c.Paths.Output) == "." {
		return fmt.Errorf("%w: paths.output: must not be the source directory", ErrInvalidField)
	}
	return nil
}

func (c *Config) validatePages() error {
	seen := make(map[string]bool, len(c.Pages))
	for i, p := range c.Pages {
		field := fmt.Sprintf("pages[%d]", i)

		if !strings.HasSuffix(p.Source, ".md") || !fileutil.IsPathUnderDir(p.Source) {
			return fmt.Errorf("%w: %s.source: must be a relative .md path, got %q", ErrInvalidField, field, p.Source)
		}
		if !strings.HasSuffix(p.Output, ".html") || !fileutil.IsPathUnderDir(p.Output) {
			return fmt.Errorf("%w: %s.output: must be a relative .html path, got %q", ErrInvalidField, field, p.Output)
		}
		if err := validateFieldLength(field+".title", p.Title, MaxPageTitleLength); err != nil {
			return err
		}

		// The index is written last and would silently replace the page.
		out := filepath.ToSlash(filepath.Clean(p.Output))
		if out == "index.html" {
			return fmt.Errorf("%w: %s.output: %q is reserved for the article index", ErrInvalidField, field, p.Output)
		}
		if seen[out] {
			return fmt.Errorf("%w: %s.output: duplicate output %q", ErrInvalidField, field, p.Output)
		}
		seen[out] = true
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML onto DefaultConfig, rejecting unknown fields, and
// validates the result.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, $XDG_CONFIG_HOME/go-md2blog/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2blog", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Paths.Content != "." {
		t.Errorf("Paths.Content = %q, want %q", cfg.Paths.Content, ".")
	}
	if cfg.Paths.Output != "public" {
		t.Errorf("Paths.Output = %q, want %q", cfg.Paths.Output, "public")
	}
	if cfg.Paths.Favicon != "favicon.ico" {
		t.Errorf("Paths.Favicon = %q, want %q", cfg.Paths.Favicon, "favicon.ico")
	}
	if cfg.Site.Locale != "de-DE" {
		t.Errorf("Site.Locale = %q, want %q", cfg.Site.Locale, "de-DE")
	}
	if len(cfg.Pages) != 1 || cfg.Pages[0].Output != "impressum.html" {
		t.Errorf("Pages = %+v, want the impressum page", cfg.Pages)
	}
	if cfg.Templates.Builtin {
		t.Error("Templates.Builtin = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value", value: "", maxLength: 10, wantErr: false},
		{name: "at limit", value: "abcde", maxLength: 5, wantErr: false},
		{name: "over limit", value: "abcdef", maxLength: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("field", tt.value, tt.maxLength)
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("validateFieldLength() error = %v, want ErrFieldTooLong", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateFieldLength() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:   "https base URL",
			modify: func(c *Config) { c.Site.BaseURL = "https://blog.example.com" },
		},
		{
			name:   "english locale",
			modify: func(c *Config) { c.Site.Locale = "en-US" },
		},
		{
			name:   "custom date formats",
			modify: func(c *Config) { c.Dates.Full = "dddd, D. MMMM YYYY"; c.Dates.Short = "DD.MM.YYYY" },
		},
		{
			name:   "no standalone pages",
			modify: func(c *Config) { c.Pages = nil },
		},
		{
			name:    "title too long",
			modify:  func(c *Config) { c.Site.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "description too long",
			modify:  func(c *Config) { c.Site.Description = strings.Repeat("a", MaxDescriptionLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "relative base URL",
			modify:  func(c *Config) { c.Site.BaseURL = "blog.example.com" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "ftp base URL",
			modify:  func(c *Config) { c.Site.BaseURL = "ftp://example.com" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "unparseable locale",
			modify:  func(c *Config) { c.Site.Locale = "not a locale" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "unclosed bracket in date format",
			modify:  func(c *Config) { c.Dates.Full = "[Date YYYY" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "empty content path",
			modify:  func(c *Config) { c.Paths.Content = "" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "output is the source directory",
			modify:  func(c *Config) { c.Paths.Output = "./" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "page source not markdown",
			modify:  func(c *Config) { c.Pages[0].Source = "impressum.txt" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "page output escapes output dir",
			modify:  func(c *Config) { c.Pages[0].Output = "../impressum.html" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "page output replaces index",
			modify:  func(c *Config) { c.Pages[0].Output = "index.html" },
			wantErr: ErrInvalidField,
		},
		{
			name: "duplicate page output",
			modify: func(c *Config) {
				c.Pages = append(c.Pages, PageConfig{Source: "about.md", Output: "./impressum.html"})
			},
			wantErr: ErrInvalidField,
		},
		{
			name:    "page title too long",
			modify:  func(c *Config) { c.Pages[0].Title = strings.Repeat("a", MaxPageTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty document keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := Parse([]byte("\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if cfg.Paths.Output != "public" {
			t.Errorf("Paths.Output = %q, want %q", cfg.Paths.Output, "public")
		}
	})

	t.Run("partial document overrides only given fields", func(t *testing.T) {
		t.Parallel()

		content := `site:
  title: "Notizen"
  baseURL: "https://notizen.example.org"
markdown:
  lazyImages: true
`
		cfg, err := Parse([]byte(content))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if cfg.Site.Title != "Notizen" {
			t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "Notizen")
		}
		if cfg.Site.Locale != "de-DE" {
			t.Errorf("Site.Locale = %q, want default %q", cfg.Site.Locale, "de-DE")
		}
		if !cfg.Markdown.LazyImages {
			t.Error("Markdown.LazyImages = false, want true")
		}
		if cfg.Paths.Styles != "styles" {
			t.Errorf("Paths.Styles = %q, want default %q", cfg.Paths.Styles, "styles")
		}
	})

	t.Run("pages list replaces the default", func(t *testing.T) {
		t.Parallel()

		content := `pages:
  - source: about.md
    output: about.html
    title: About
`
		cfg, err := Parse([]byte(content))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(cfg.Pages) != 1 || cfg.Pages[0].Source != "about.md" {
			t.Errorf("Pages = %+v, want only about.md", cfg.Pages)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("site:\n  tagline: hi\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("Parse() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid yaml is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("site: [unclosed\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("Parse() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("oversized input is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Parse(make([]byte, MaxInputSize+1))
		if !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("Parse() error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("validation runs after decoding", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("site:\n  baseURL: example.com\n"))
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("Parse() error = %v, want ErrInvalidField", err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "site.yaml")
		content := `site:
  title: "Mein Blog"
templates:
  builtin: true
`
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Site.Title != "Mein Blog" {
			t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "Mein Blog")
		}
		if !cfg.Templates.Builtin {
			t.Error("Templates.Builtin = false, want true")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "md2blog.yaml"), []byte("site:\n  title: local\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig(DefaultName)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Site.Title != "local" {
			t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "local")
		}
	})

	t.Run("config name resolves yml when yaml not found", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "md2blog.yml"), []byte("site:\n  title: short\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig(DefaultName)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Site.Title != "short" {
			t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "short")
		}
	})

	t.Run("config name falls back to user config dir", func(t *testing.T) {
		xdg := t.TempDir()
		userDir := filepath.Join(xdg, "go-md2blog")
		if err := os.MkdirAll(userDir, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(userDir, "travel.yaml"), []byte("site:\n  title: travel\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		cfg, err := LoadConfig("travel")
		if err != nil {
			t.Skipf("user config dir not honored on this platform: %v", err)
		}
		if cfg.Site.Title != "travel" {
			t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "travel")
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nowhere")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nowhere.yaml") {
			t.Errorf("error %q should list the tried paths", err)
		}
	})
}

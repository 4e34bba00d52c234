package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"foo.yaml", "/home/me/.config/go-md2blog/foo.yaml"},
			contains: "create /home/me/.config/go-md2blog/foo.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dir      string
		contains []string
	}{
		{
			name:     "without directory",
			dir:      "",
			contains: []string{"layout", "templates.builtin"},
		},
		{
			name:     "with directory",
			dir:      "site/templates",
			contains: []string{"in site/templates", "templates.builtin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForTemplateNotFound(tt.dir)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("expected hint to contain %q, got %q", want, hint)
				}
			}
		})
	}
}

func TestForMissingInput(t *testing.T) {
	t.Parallel()

	hint := ForMissingInput("/blog/fonts")
	if !strings.Contains(hint, "root directory") {
		t.Errorf("expected root directory mention, got %q", hint)
	}
	if !strings.Contains(hint, "fonts") {
		t.Errorf("expected input name mention, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForConfigNotFound(nil),
		ForOutputDirectory(),
		ForTemplateNotFound(""),
		ForMissingInput(""),
		ForAssetPath(),
		ForDuplicateSlug(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}

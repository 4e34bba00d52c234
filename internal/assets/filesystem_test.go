package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		filePath := filepath.Join(tmpDir, "file.txt")
		if err := os.WriteFile(filePath, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("loads existing template", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		want := `{{define "content"}}custom{{end}}`
		if err := os.WriteFile(filepath.Join(tmpDir, "page.tmpl"), []byte(want), 0o644); err != nil {
			t.Fatalf("failed to write template: %v", err)
		}

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		got, err := loader.LoadTemplate(PageTemplate)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != want {
			t.Errorf("LoadTemplate() = %q, want %q", got, want)
		}
	})

	t.Run("returns ErrTemplateNotFound for nonexistent", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadTemplate(FeedTemplate)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("returns ErrInvalidTemplateName for invalid name", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadTemplate("../layout")
		if !errors.Is(err, ErrInvalidTemplateName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidTemplateName", err)
		}
	})
}

func TestLoadAll_MissingTemplate(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	for _, name := range []string{LayoutTemplate, PageTemplate, ArticleTemplate, IndexTemplate} {
		if err := os.WriteFile(filepath.Join(tmpDir, name+TemplateExtension), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write template: %v", err)
		}
	}

	loader, err := NewFilesystemLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	_, err = LoadAll(loader)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadAll() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	t.Run("rejects symlink escape attempt", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		// Create a secret file outside the base path
		secretDir := t.TempDir()
		secretFile := filepath.Join(secretDir, "secret.tmpl")
		if err := os.WriteFile(secretFile, []byte("secret content"), 0o644); err != nil {
			t.Fatalf("failed to write secret file: %v", err)
		}

		// Create symlink inside the template dir pointing outside
		if err := os.Symlink(secretFile, filepath.Join(tmpDir, "layout.tmpl")); err != nil {
			t.Skipf("symlink creation not supported: %v", err)
		}

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadTemplate(LayoutTemplate)
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadTemplate() with symlink escape error = %v, want ErrPathTraversal", err)
		}
	})
}

func TestFilesystemLoader_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*FilesystemLoader)(nil)
}

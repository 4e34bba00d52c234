package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	md2blog "github.com/alnah/go-md2blog"
	"github.com/alnah/go-md2blog/internal/assets"
	"github.com/alnah/go-md2blog/internal/config"
	"github.com/alnah/go-md2blog/internal/fileutil"
	"github.com/alnah/go-md2blog/internal/hints"
)

// publishError keeps the context of a failed publish run for hints.
type publishError struct {
	err         error
	templateDir string
}

func (e *publishError) Error() string { return e.err.Error() }
func (e *publishError) Unwrap() error { return e.err }

// runMain parses args, publishes, and returns the process exit code.
// Errors are printed to env.Stderr with an actionable hint when one applies.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args[1:], env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2blog %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run loads the configuration and publishes the site.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags.config, env.WorkDir)
	if err != nil {
		return err
	}

	pub, err := md2blog.NewPublisher(
		md2blog.WithConfig(cfg),
		md2blog.WithLogger(newLogger(env.Stderr, flags.quiet, flags.verbose)),
		md2blog.WithSourceDir(env.WorkDir),
		md2blog.WithOutputDir(flags.output),
	)
	if err != nil {
		return err
	}

	report, err := pub.Publish(ctx)
	if err != nil {
		return &publishError{err: err, templateDir: pub.TemplateDir()}
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Published %d articles and %d pages to %s (%d files, %s)\n",
			report.Articles, report.Pages, pub.OutputDir(), report.Files, report.Duration.Round(time.Millisecond))
	}
	return nil
}

// loadConfig loads the named config, or md2blog.yaml/.yml from workDir when
// present, or the built-in defaults.
func loadConfig(nameOrPath, workDir string) (*config.Config, error) {
	if nameOrPath != "" {
		return config.LoadConfig(nameOrPath)
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(workDir, config.DefaultName+ext)
		if fileutil.FileExists(path) {
			return config.LoadConfig(path)
		}
	}
	return config.DefaultConfig(), nil
}

// newLogger builds the stderr logger: Error only when quiet, Debug when
// verbose, Info otherwise.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *cliFlags) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigCandidates(flags.config))
	case errors.Is(err, assets.ErrTemplateNotFound), errors.Is(err, assets.ErrInvalidBasePath):
		var pubErr *publishError
		if errors.As(err, &pubErr) {
			return hints.ForTemplateNotFound(pubErr.templateDir)
		}
		return hints.ForTemplateNotFound("")
	case errors.Is(err, md2blog.ErrAssetPath):
		return hints.ForAssetPath()
	case errors.Is(err, md2blog.ErrDuplicateSlug):
		return hints.ForDuplicateSlug()
	case errors.Is(err, md2blog.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}

	var pathErr *fs.PathError
	if errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr) {
		return hints.ForMissingInput(pathErr.Path)
	}
	return ""
}

// userConfigCandidates lists where a named config could be created.
func userConfigCandidates(name string) []string {
	if name == "" || fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-md2blog", name+".yaml")}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for command-line usage.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrConflictFlags  = errors.New("conflicting flags")
)

// cliFlags holds every md2blog flag.
type cliFlags struct {
	config  string
	output  string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// parseFlags parses args (without the program name). md2blog takes no
// positional arguments: it always publishes the working directory.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2blog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (overrides paths.output)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every file")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v (md2blog publishes the current directory)", ErrUnexpectedArgs, fs.Args())
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose", ErrConflictFlags)
	}

	return f, nil
}

// hasVerboseFlag reports whether -v or --verbose appears in args. Used
// before full parsing to configure runtime logging.
func hasVerboseFlag(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

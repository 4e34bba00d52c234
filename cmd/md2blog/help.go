package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2blog [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publish the blog in the current directory as a static site.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Articles are named YYYY-MM-DD_slug.md. Without a config file the")
	fmt.Fprintln(w, "conventional layout is used: templates/, styles/, fonts/, favicon.ico,")
	fmt.Fprintln(w, "impressum.md, and output in public/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path (default: md2blog.yaml if present)")
	fmt.Fprintln(w, "  -o, --output <dir>    Output directory (overrides paths.output)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Log every file")
	fmt.Fprintln(w, "      --version         Show version information")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config names are searched in the current directory, then in")
	fmt.Fprintln(w, "$XDG_CONFIG_HOME/go-md2blog/ (.yaml, then .yml).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  unexpected error")
	fmt.Fprintln(w, "  2  invalid flags, config or templates")
	fmt.Fprintln(w, "  3  file not found, unreadable or unwritable")
}

// Package logfields holds the canonical slog attribute keys used across the publisher.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage      = "stage"
	KeySlug       = "slug"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyReason     = "reason"
	KeyError      = "error"
)

func Stage(name string) slog.Attr   { return slog.String(KeyStage, name) }
func Slug(s string) slog.Attr       { return slog.String(KeySlug, s) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func File(name string) slog.Attr    { return slog.String(KeyFile, name) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Reason(r string) slog.Attr     { return slog.String(KeyReason, r) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

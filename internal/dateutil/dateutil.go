// Package dateutil parses publish dates and formats them for a locale.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Sentinel errors for date operations.
var (
	ErrInvalidPublishDate = errors.New("invalid publish date")
	ErrUnsupportedLocale  = errors.New("unsupported locale")
)

// DefaultLocale matches the locale the blog was first published in.
const DefaultLocale = "de-DE"

// isoLayout mirrors JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

// publishLayouts are tried in order. Date-only values parse as midnight UTC.
var publishLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// localeLayouts holds the full and short layouts per supported locale.
var localeLayouts = map[monday.Locale]struct{ full, short string }{
	monday.LocaleDeDE: {full: "Monday, 2. January 2006", short: "02.01.2006"},
	monday.LocaleEnUS: {full: "Monday, January 2, 2006", short: "Jan 2, 2006"},
	monday.LocaleEnGB: {full: "Monday, 2 January 2006", short: "2 Jan 2006"},
	monday.LocaleFrFR: {full: "Monday 2 January 2006", short: "2 Jan 2006"},
}

// ParsePublishDate parses the date prefix of an article filename.
// The value must be a real calendar date: "2024-02-30" is rejected.
func ParsePublishDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidPublishDate)
	}
	for _, layout := range publishLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPublishDate, value)
}

// ParseLocale maps a BCP 47 tag such as "de-DE" or "en" to a supported locale.
// A missing region is filled in with the most likely one for the language.
func ParseLocale(tag string) (monday.Locale, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, tag, err)
	}

	base, _ := parsed.Base()
	region, _ := parsed.Region()
	locale := monday.Locale(strings.ToLower(base.String()) + "_" + strings.ToUpper(region.String()))

	if _, ok := localeLayouts[locale]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
	}
	return locale, nil
}

// Formatter renders dates for templates in one locale.
type Formatter struct {
	locale monday.Locale
	full   string
	short  string
}

// NewFormatter creates a Formatter for the locale tag. Empty fullFormat or
// shortFormat fall back to the locale's defaults; otherwise they use the
// tokens accepted by ParseDateFormat.
func NewFormatter(localeTag, fullFormat, shortFormat string) (*Formatter, error) {
	if localeTag == "" {
		localeTag = DefaultLocale
	}
	locale, err := ParseLocale(localeTag)
	if err != nil {
		return nil, err
	}

	f := &Formatter{
		locale: locale,
		full:   localeLayouts[locale].full,
		short:  localeLayouts[locale].short,
	}

	if fullFormat != "" {
		if f.full, err = ParseDateFormat(fullFormat); err != nil {
			return nil, err
		}
	}
	if shortFormat != "" {
		if f.short, err = ParseDateFormat(shortFormat); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Locale returns the resolved locale, e.g. "de_DE".
func (f *Formatter) Locale() string {
	return string(f.locale)
}

// Full formats t with weekday and month names, e.g. "Montag, 1. Januar 2024".
func (f *Formatter) Full(t time.Time) string {
	return monday.Format(t, f.full, f.locale)
}

// Short formats t compactly, e.g. "01.01.2024".
func (f *Formatter) Short(t time.Time) string {
	return monday.Format(t, f.short, f.locale)
}

// ISO formats t in UTC with millisecond precision.
func (f *Formatter) ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// RFC1123 formats t for RSS pubDate elements. Always English.
func (f *Formatter) RFC1123(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

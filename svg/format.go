package svg

import (
	"strconv"
	"strings"
)

// formatNum renders a coordinate with up to four fractional digits, trailing
// zeros trimmed. strconv is locale independent by construction.
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// FormatNum exposes the coordinate formatter for callers assembling path
// data strings outside this package.
func FormatNum(v float64) string {
	return formatNum(v)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape makes a string safe for use in SVG attribute values and text nodes.
func escape(s string) string {
	return textEscaper.Replace(s)
}

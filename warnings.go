package sheetsvg

import "strings"

// Warning describes a non-fatal condition encountered during an export, such
// as a skipped view. Warnings never abort the export; they are returned
// beside the result.
type Warning string

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = string(w)
	}
	return strings.Join(parts, "; ")
}

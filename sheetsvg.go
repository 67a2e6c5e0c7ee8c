// Package sheetsvg provides a fluent API for exporting CAD drawing sheets to
// layered SVG documents.
//
// Basic usage:
//
//	result, warnings, err := sheetsvg.From(provider).Export()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", sheetsvg.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := sheetsvg.From(provider).
//	    View("Detail B").
//	    ExcludeOutOfBounds().
//	    PerView().
//	    Export()
//
// For advanced use cases, the lower-level record, geom, and svg packages are
// also available.
package sheetsvg

import (
	"github.com/cfortier/sheetsvg/host"
)

// From creates an Exporter reading from the given host provider.
//
// Example:
//
//	result, warnings, err := sheetsvg.From(provider).Export()
func From(p host.Provider) *Exporter {
	return &Exporter{
		provider: p,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExport wraps a call to Export and panics if the error is non-nil.
// It discards warnings and returns just the result.
//
// Example:
//
//	result := sheetsvg.MustExport(sheetsvg.From(provider).Export())
func MustExport(res *Result, _ []Warning, err error) *Result {
	if err != nil {
		panic(err)
	}
	return res
}

package sheetsvg

import "github.com/cfortier/sheetsvg/svg"

// ExportOptions holds configuration for a sheet export.
type ExportOptions struct {
	// View selection; empty means all views
	viewName string

	// Filtering
	excludeOutOfBounds bool

	// Output shaping
	perView      bool
	fitToContent bool
	fitPadding   float64
	defaultColor string
}

// defaultOptions returns the default export options.
func defaultOptions() ExportOptions {
	return ExportOptions{
		viewName:           "",
		excludeOutOfBounds: false,
		perView:            false,
		fitToContent:       true,
		fitPadding:         svg.DefaultFitPadding,
		defaultColor:       "",
	}
}

// clone creates a copy of ExportOptions.
func (o ExportOptions) clone() ExportOptions {
	return ExportOptions{
		viewName:           o.viewName,
		excludeOutOfBounds: o.excludeOutOfBounds,
		perView:            o.perView,
		fitToContent:       o.fitToContent,
		fitPadding:         o.fitPadding,
		defaultColor:       o.defaultColor,
	}
}

package sheetsvg

import (
	"fmt"

	"github.com/cfortier/sheetsvg/bom"
	"github.com/cfortier/sheetsvg/geom"
	"github.com/cfortier/sheetsvg/host"
	"github.com/cfortier/sheetsvg/render"
	"github.com/cfortier/sheetsvg/svg"
)

// Exporter provides a fluent interface for exporting drawing sheets.
// Each configuration method returns a new Exporter instance, making it
// safe for concurrent use and allowing method chaining.
type Exporter struct {
	// Source
	provider host.Provider

	// Configuration
	options ExportOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during configuration
	warnings []Warning
}

// Result holds the rendered documents of one export pass.
type Result struct {
	// Sheet is the combined document covering every rendered view and the
	// sheet's annotations.
	Sheet *svg.Document

	// Views maps view names to their individual documents. Populated only
	// when per-view output was requested and more than one view rendered.
	Views map[string]*svg.Document
}

// clone creates a shallow copy of the Exporter with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (e *Exporter) clone() *Exporter {
	return &Exporter{
		provider: e.provider,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// View restricts the export to the single named view. When the view does not
// exist on the sheet, Export returns a warning and a nil result.
func (e *Exporter) View(name string) *Exporter {
	newExp := e.clone()
	newExp.options.viewName = name
	return newExp
}

// ExcludeOutOfBounds skips views whose projected outline has no overlap with
// the sheet rectangle. Each skipped view contributes one warning.
func (e *Exporter) ExcludeOutOfBounds() *Exporter {
	newExp := e.clone()
	newExp.options.excludeOutOfBounds = true
	return newExp
}

// PerView additionally renders each view into its own document beside the
// combined sheet document. Per-view documents are produced only when more
// than one view renders.
func (e *Exporter) PerView() *Exporter {
	newExp := e.clone()
	newExp.options.perView = true
	return newExp
}

// KeepSheetFraming disables the default fit-to-content pass, leaving each
// document's viewport at the full sheet size.
func (e *Exporter) KeepSheetFraming() *Exporter {
	newExp := e.clone()
	newExp.options.fitToContent = false
	return newExp
}

// FitPadding overrides the fit-to-content margin, in output units.
func (e *Exporter) FitPadding(padding float64) *Exporter {
	newExp := e.clone()
	newExp.options.fitPadding = padding
	return newExp
}

// DefaultColor sets the stroke color, by SVG color name, used for geometry
// that carries no color of its own. Unknown names fall back to black.
func (e *Exporter) DefaultColor(name string) *Exporter {
	newExp := e.clone()
	newExp.options.defaultColor = name
	return newExp
}

// Export runs the render pass: it decodes and draws every selected view plus
// the sheet's balloon annotations, applies fit-to-content framing, and
// returns the documents along with any warnings. Warnings indicate non-fatal
// issues; only a missing provider or sheet is an error.
func (e *Exporter) Export() (*Result, []Warning, error) {
	if e.err != nil {
		return nil, e.warnings, e.err
	}
	if e.provider == nil {
		return nil, e.warnings, fmt.Errorf("no provider specified")
	}
	sheet := e.provider.Sheet()
	if sheet == nil {
		return nil, e.warnings, fmt.Errorf("provider has no active sheet")
	}

	warnings := append([]Warning(nil), e.warnings...)

	width, height := sheet.Size()
	pipeline := geom.Pipeline{SheetWidth: width, SheetHeight: height}
	rows := extractBOM(sheet)

	selected, found := selectViews(sheet.Views(), e.options.viewName)
	if !found {
		warnings = append(warnings, Warning(fmt.Sprintf("view %q not found", e.options.viewName)))
		return nil, warnings, nil
	}

	result := &Result{Sheet: svg.NewDocument(width, height)}
	renderOpts := render.Options{DefaultColor: e.options.defaultColor}
	perView := e.options.perView && len(selected) > 1

	for _, v := range selected {
		if !v.Visible() {
			continue
		}
		if e.options.excludeOutOfBounds && outOfBounds(v, pipeline) {
			warnings = append(warnings, Warning(fmt.Sprintf("view %q is outside the sheet, excluded", v.Name())))
			continue
		}

		docs := []*svg.Document{result.Sheet}
		if perView {
			d := svg.NewDocument(width, height)
			if result.Views == nil {
				result.Views = make(map[string]*svg.Document)
			}
			result.Views[v.Name()] = d
			docs = append(docs, d)
		}
		render.New(pipeline, rows, renderOpts, docs...).RenderView(v)
	}

	// Balloons are sheet-level annotations; they render into the combined
	// document only.
	render.New(pipeline, rows, renderOpts, result.Sheet).RenderBalloons(sheet.Balloons())

	if e.options.fitToContent {
		result.Sheet.FitToContent(e.options.fitPadding)
		for _, d := range result.Views {
			d.FitToContent(e.options.fitPadding)
		}
	}
	return result, warnings, nil
}

// selectViews applies the optional view-name filter. found is false only
// when a name was given and no view carries it.
func selectViews(views []host.View, name string) (selected []host.View, found bool) {
	if name == "" {
		return views, true
	}
	for _, v := range views {
		if v.Name() == name {
			return []host.View{v}, true
		}
	}
	return nil, false
}

// outOfBounds reports whether a view's outline, converted to output units,
// has no overlap with the sheet rectangle.
func outOfBounds(v host.View, pipeline geom.Pipeline) bool {
	o := v.Outline()
	outline := geom.Rect{
		X:      o.X * geom.MetersToMillimeters,
		Y:      o.Y * geom.MetersToMillimeters,
		Width:  o.Width * geom.MetersToMillimeters,
		Height: o.Height * geom.MetersToMillimeters,
	}
	return outline.DisjointFrom(pipeline.SheetRect())
}

// extractBOM returns the first table yielding bill-of-materials rows, or nil
// when the sheet has none.
func extractBOM(sheet host.Sheet) map[string]bom.Row {
	for _, t := range sheet.Tables() {
		if rows := bom.Extract(t); len(rows) > 0 {
			return rows
		}
	}
	return nil
}

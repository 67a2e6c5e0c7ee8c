package geom

// MetersToMillimeters converts host model/sheet coordinates (meters) to
// output units (millimeters). Applied before placement or flipping.
const MetersToMillimeters = 1000.0

// Placement describes where one drawing view sits on the sheet: its declared
// scale factor and its anchor position, the latter already in output units.
type Placement struct {
	Scale  float64
	Origin Point
}

// ModelToSheet maps a model-space point (meters) into sheet space
// (output units): unit conversion, view scale, then the view anchor.
func (pl Placement) ModelToSheet(p Point) Point {
	return Point{
		X: p.X*MetersToMillimeters*pl.Scale + pl.Origin.X,
		Y: p.Y*MetersToMillimeters*pl.Scale + pl.Origin.Y,
	}
}

// FlipY maps a sheet-space point into output space by mirroring the Y axis
// around the sheet height. The transform is an involution: applying it twice
// with the same height restores the original point.
func FlipY(p Point, sheetHeight float64) Point {
	return Point{X: p.X, Y: sheetHeight - p.Y}
}

// Pipeline composes the per-sheet transform chain. SheetWidth and SheetHeight
// are in output units.
type Pipeline struct {
	SheetWidth  float64
	SheetHeight float64
}

// ModelToOutput maps a model-space point (meters) through a view placement
// and the vertical flip into output space.
func (tp Pipeline) ModelToOutput(p Point, pl Placement) Point {
	return FlipY(pl.ModelToSheet(p), tp.SheetHeight)
}

// SheetToOutput maps a sheet-space point (meters) into output space.
// Annotation geometry is expressed directly in sheet space and skips the
// model-to-sheet step.
func (tp Pipeline) SheetToOutput(p Point) Point {
	return FlipY(Point{
		X: p.X * MetersToMillimeters,
		Y: p.Y * MetersToMillimeters,
	}, tp.SheetHeight)
}

// SheetRect returns the sheet rectangle in output units, anchored at the
// origin.
func (tp Pipeline) SheetRect() Rect {
	return Rect{X: 0, Y: 0, Width: tp.SheetWidth, Height: tp.SheetHeight}
}

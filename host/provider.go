package host

import "github.com/cfortier/sheetsvg/geom"

// Provider is the entry point handed to the exporter: one drawing document
// with its active sheet.
type Provider interface {
	// Sheet returns the active drawing sheet.
	Sheet() Sheet
}

// Sheet is one drawing page: its paper size, its views, and its annotations
// that are not attached to any particular view.
type Sheet interface {
	// Size returns the paper width and height in output units.
	Size() (width, height float64)

	// Views returns the sheet's drawing views in draw order.
	Views() []View

	// Balloons returns the sheet's callout annotations.
	Balloons() []Balloon

	// Tables returns the sheet's tabular annotations. The bill of
	// materials, if present, is one of these.
	Tables() []Table
}

// View is one drawing view placed on the sheet. Geometry buffers use the
// self-describing flat layouts decoded by package record; placement
// accessors are in the units noted per method.
type View interface {
	// Name returns the view's display name, unique on its sheet.
	Name() string

	// Visible reports whether the view is shown.
	Visible() bool

	// Scale returns the view's declared scale factor.
	Scale() float64

	// Origin returns the view anchor on the sheet, in output units.
	Origin() geom.Point

	// Outline returns the view's projected outline rectangle in sheet
	// space (meters).
	Outline() geom.Rect

	// Polylines returns the tessellated edge buffer (model space, meters).
	Polylines() []float64

	// BreakLines returns the break-line buffer (sheet space, meters).
	BreakLines() []float64

	// DetailCircles returns the detail-circle buffer (sheet space, meters).
	DetailCircles() []float64
}

// BalloonStyle identifies the balloon outline shape. Only circular balloons
// are rendered; the other styles are decoded and skipped.
type BalloonStyle int

const (
	BalloonNone BalloonStyle = iota
	BalloonCircular
	BalloonTriangle
	BalloonHexagon
	BalloonBox
	BalloonUnderline
)

// TextFormat carries the text styling of an annotation.
type TextFormat struct {
	Typeface   string
	Bold       bool
	Italic     bool
	CharHeight float64 // meters
}

// Balloon is a callout annotation, typically cross-referencing a bill of
// materials row by item number. All coordinates are sheet space, meters.
type Balloon struct {
	Position geom.Point
	Visible  bool
	Color    int

	// Text is the displayed item code. Empty when the balloon carries no
	// renderable text.
	Text string

	HasBalloon    bool
	BalloonCenter geom.Point
	BalloonRadius float64
	BalloonStyle  BalloonStyle

	// Leaders are the leader polylines, three or more points each.
	Leaders [][]geom.Point

	// MultiJogLeaders are additional leader line segments.
	MultiJogLeaders []Segment

	TextFormat TextFormat
}

// Segment is one leader line segment in sheet space, meters.
type Segment struct {
	Start geom.Point
	End   geom.Point
}

// Table is a generic tabular annotation: a grid of displayed cell text.
// Row 0 is the header row.
type Table interface {
	// RowCount returns the number of rows, header included.
	RowCount() int

	// ColumnCount returns the number of columns.
	ColumnCount() int

	// CellText returns the displayed text of one cell. Out-of-range
	// indices return the empty string.
	CellText(row, col int) string
}

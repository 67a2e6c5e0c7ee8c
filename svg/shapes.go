package svg

import "strings"

// shape is one leaf element. Shapes serialize themselves; attribute order is
// fixed so output is deterministic.
type shape interface {
	encode(sb *strings.Builder, depth int)
}

// strokeAttrs writes the shared stroke/fill attribute tail.
func strokeAttrs(sb *strings.Builder, stroke string, width float64, fill, dash string) {
	if fill == "" {
		fill = "none"
	}
	sb.WriteString(` fill="`)
	sb.WriteString(escape(fill))
	sb.WriteString(`" stroke="`)
	sb.WriteString(escape(stroke))
	sb.WriteString(`" stroke-width="`)
	sb.WriteString(formatNum(width))
	sb.WriteString(`"`)
	if dash != "" {
		sb.WriteString(` stroke-dasharray="`)
		sb.WriteString(escape(dash))
		sb.WriteString(`"`)
	}
}

type pathShape struct {
	d           string
	stroke      string
	strokeWidth float64
	fill        string
	dash        string
}

func (p pathShape) encode(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(`<path d="`)
	sb.WriteString(escape(p.d))
	sb.WriteString(`"`)
	strokeAttrs(sb, p.stroke, p.strokeWidth, p.fill, p.dash)
	sb.WriteString("/>\n")
}

// AddPath emits a path with the given data string in the SVG path
// mini-language. fill defaults to "none" when empty.
func (d *Document) AddPath(pathData, stroke string, strokeWidth float64, fill, dash string) {
	d.addShape(pathShape{
		d:           pathData,
		stroke:      stroke,
		strokeWidth: strokeWidth,
		fill:        fill,
		dash:        dash,
	})
}

type lineShape struct {
	x1, y1, x2, y2 float64
	stroke         string
	strokeWidth    float64
	dash           string
}

func (l lineShape) encode(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(`<line x1="`)
	sb.WriteString(formatNum(l.x1))
	sb.WriteString(`" y1="`)
	sb.WriteString(formatNum(l.y1))
	sb.WriteString(`" x2="`)
	sb.WriteString(formatNum(l.x2))
	sb.WriteString(`" y2="`)
	sb.WriteString(formatNum(l.y2))
	sb.WriteString(`" stroke="`)
	sb.WriteString(escape(l.stroke))
	sb.WriteString(`" stroke-width="`)
	sb.WriteString(formatNum(l.strokeWidth))
	sb.WriteString(`"`)
	if l.dash != "" {
		sb.WriteString(` stroke-dasharray="`)
		sb.WriteString(escape(l.dash))
		sb.WriteString(`"`)
	}
	sb.WriteString("/>\n")
}

// AddLine emits a line segment.
func (d *Document) AddLine(x1, y1, x2, y2 float64, stroke string, strokeWidth float64, dash string) {
	d.addShape(lineShape{
		x1: x1, y1: y1, x2: x2, y2: y2,
		stroke:      stroke,
		strokeWidth: strokeWidth,
		dash:        dash,
	})
}

type circleShape struct {
	cx, cy, r   float64
	stroke      string
	strokeWidth float64
	fill        string
	dash        string
}

func (c circleShape) encode(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(`<circle cx="`)
	sb.WriteString(formatNum(c.cx))
	sb.WriteString(`" cy="`)
	sb.WriteString(formatNum(c.cy))
	sb.WriteString(`" r="`)
	sb.WriteString(formatNum(c.r))
	sb.WriteString(`"`)
	strokeAttrs(sb, c.stroke, c.strokeWidth, c.fill, c.dash)
	sb.WriteString("/>\n")
}

// AddCircle emits a circle.
func (d *Document) AddCircle(cx, cy, r float64, stroke string, strokeWidth float64, fill, dash string) {
	d.addShape(circleShape{
		cx: cx, cy: cy, r: r,
		stroke:      stroke,
		strokeWidth: strokeWidth,
		fill:        fill,
		dash:        dash,
	})
}

type ellipseShape struct {
	cx, cy, rx, ry float64
	rotation       float64
	stroke         string
	strokeWidth    float64
	fill           string
}

func (e ellipseShape) encode(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(`<ellipse cx="`)
	sb.WriteString(formatNum(e.cx))
	sb.WriteString(`" cy="`)
	sb.WriteString(formatNum(e.cy))
	sb.WriteString(`" rx="`)
	sb.WriteString(formatNum(e.rx))
	sb.WriteString(`" ry="`)
	sb.WriteString(formatNum(e.ry))
	sb.WriteString(`"`)
	if e.rotation != 0 {
		sb.WriteString(` transform="rotate(`)
		sb.WriteString(formatNum(e.rotation))
		sb.WriteString(" ")
		sb.WriteString(formatNum(e.cx))
		sb.WriteString(" ")
		sb.WriteString(formatNum(e.cy))
		sb.WriteString(`)"`)
	}
	strokeAttrs(sb, e.stroke, e.strokeWidth, e.fill, "")
	sb.WriteString("/>\n")
}

// AddEllipse emits an ellipse, optionally rotated around its own center by
// rotationDegrees.
func (d *Document) AddEllipse(cx, cy, rx, ry, rotationDegrees float64, stroke string, strokeWidth float64, fill string) {
	d.addShape(ellipseShape{
		cx: cx, cy: cy, rx: rx, ry: ry,
		rotation:    rotationDegrees,
		stroke:      stroke,
		strokeWidth: strokeWidth,
		fill:        fill,
	})
}

// TextStyle configures AddText. Zero-value fields fall back to the defaults
// noted per field.
type TextStyle struct {
	Font     string  // font family
	Size     float64 // font size in output units
	Color    string  // fill color
	Rotation float64 // degrees, around the anchor point
	Anchor   string  // text-anchor; default "start"
	Baseline string  // dominant-baseline; default "middle"
	Bold     bool
	Italic   bool
}

// lineSpacing is the per-line offset factor for multi-line text.
const lineSpacing = 1.2

type textShape struct {
	x, y  float64
	text  string
	style TextStyle
}

func (t textShape) encode(sb *strings.Builder, depth int) {
	anchor := t.style.Anchor
	if anchor == "" {
		anchor = "start"
	}
	baseline := t.style.Baseline
	if baseline == "" {
		baseline = "middle"
	}

	// Multi-line text renders as stacked lines sharing the anchor x.
	lines := strings.Split(t.text, "\n")
	for i, line := range lines {
		y := t.y + float64(i)*lineSpacing*t.style.Size

		indent(sb, depth)
		sb.WriteString(`<text x="`)
		sb.WriteString(formatNum(t.x))
		sb.WriteString(`" y="`)
		sb.WriteString(formatNum(y))
		sb.WriteString(`" font-family="`)
		sb.WriteString(escape(t.style.Font))
		sb.WriteString(`" font-size="`)
		sb.WriteString(formatNum(t.style.Size))
		sb.WriteString(`" fill="`)
		sb.WriteString(escape(t.style.Color))
		sb.WriteString(`" text-anchor="`)
		sb.WriteString(anchor)
		sb.WriteString(`" dominant-baseline="`)
		sb.WriteString(baseline)
		sb.WriteString(`"`)
		if t.style.Bold {
			sb.WriteString(` font-weight="bold"`)
		}
		if t.style.Italic {
			sb.WriteString(` font-style="italic"`)
		}
		if t.style.Rotation != 0 {
			sb.WriteString(` transform="rotate(`)
			sb.WriteString(formatNum(t.style.Rotation))
			sb.WriteString(" ")
			sb.WriteString(formatNum(t.x))
			sb.WriteString(" ")
			sb.WriteString(formatNum(t.y))
			sb.WriteString(`)"`)
		}
		sb.WriteString(">")
		sb.WriteString(escape(line))
		sb.WriteString("</text>\n")
	}
}

// AddText emits a text label anchored at (x, y). Text containing line breaks
// is split into stacked lines offset by 1.2 times the font size.
func (d *Document) AddText(x, y float64, text string, style TextStyle) {
	d.addShape(textShape{x: x, y: y, text: text, style: style})
}

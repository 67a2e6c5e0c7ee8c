package render

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/cfortier/sheetsvg/bom"
	"github.com/cfortier/sheetsvg/geom"
	"github.com/cfortier/sheetsvg/host"
	"github.com/cfortier/sheetsvg/record"
	"github.com/cfortier/sheetsvg/svg"
)

// Options configures a Renderer. The zero value draws black strokes.
type Options struct {
	// DefaultColor is an SVG color name used when a record carries no
	// color of its own. Unknown names fall back to black.
	DefaultColor string
}

// defaultTextSize is the label size in output units when an annotation
// carries no character height.
const defaultTextSize = 3.5

// Renderer draws one sheet's geometry into every registered document.
type Renderer struct {
	pipeline geom.Pipeline
	docs     []*svg.Document
	rows     map[string]bom.Row
	stroke   string
}

// New binds a renderer to a coordinate pipeline, a BOM lookup (may be nil),
// and one or more target documents.
func New(pipeline geom.Pipeline, rows map[string]bom.Row, opts Options, docs ...*svg.Document) *Renderer {
	stroke := "#000000"
	if opts.DefaultColor != "" {
		if hex, ok := NamedColor(opts.DefaultColor); ok {
			stroke = hex
		}
	}
	return &Renderer{
		pipeline: pipeline,
		docs:     docs,
		rows:     rows,
		stroke:   stroke,
	}
}

// RenderView decodes and draws one view's geometry: tessellated edges, break
// lines, and detail circles, grouped under the view's name.
func (r *Renderer) RenderView(v host.View) {
	pl := geom.Placement{Scale: v.Scale(), Origin: v.Origin()}

	r.startGroup(v.Name(), "view", nil)
	r.renderEdges(record.DecodePolylines(v.Polylines()), pl)
	r.renderBreakLines(record.DecodeBreakLines(v.BreakLines()))
	r.renderDetailCircles(record.DecodeDetailCircles(v.DetailCircles()))
	r.endGroup()
}

func (r *Renderer) renderEdges(lines []record.Polyline, pl geom.Placement) {
	for i := range lines {
		p := &lines[i]
		width := StrokeWidth(p.LineWeight)
		stroke := r.color(p.Color)
		dash := DashPattern(p.LineStyleID, width)

		if len(p.Points) >= 2 {
			var sb strings.Builder
			for j, pt := range p.Points {
				out := r.pipeline.ModelToOutput(pt.XY(), pl)
				if j == 0 {
					sb.WriteString("M ")
				} else {
					sb.WriteString(" L ")
				}
				sb.WriteString(svg.FormatNum(out.X))
				sb.WriteString(" ")
				sb.WriteString(svg.FormatNum(out.Y))
				r.bounds(out)
			}
			r.path(sb.String(), stroke, width, dash)
			continue
		}

		// A full circle arrives as an arc record with no tessellated
		// points; only the auxiliary center/start/end is usable.
		center3, ok := p.ArcCenter()
		if !ok {
			continue
		}
		start3, ok := p.ArcStart()
		if !ok {
			continue
		}
		center := r.pipeline.ModelToOutput(center3.XY(), pl)
		start := r.pipeline.ModelToOutput(start3.XY(), pl)
		radius := center.Distance(start)
		if radius <= 0 {
			continue
		}
		r.circle(center, radius, stroke, width, dash)
		r.boundsBox(center, radius)
	}
}

func (r *Renderer) renderBreakLines(groups []record.BreakLine) {
	if len(groups) == 0 {
		return
	}
	r.startGroup("", "break-lines", nil)
	for i := range groups {
		g := &groups[i]
		width := StrokeWidth(g.LineWeight)
		stroke := r.color(g.Color)
		dash := DashPattern(g.LineStyle, width)

		for _, seg := range g.Segments {
			a := r.pipeline.SheetToOutput(seg.Start)
			b := r.pipeline.SheetToOutput(seg.End)
			r.line(a, b, stroke, width, dash)
			r.bounds(a)
			r.bounds(b)
		}
		for _, arc := range g.Arcs {
			r.breakArc(arc, stroke, width, dash)
		}
		for _, spline := range g.Splines {
			r.sheetPolyline(spline, stroke, width, dash)
		}
	}
	r.endGroup()
}

func (r *Renderer) breakArc(arc record.BreakArc, stroke string, width float64, dash string) {
	start := r.pipeline.SheetToOutput(arc.Start)
	end := r.pipeline.SheetToOutput(arc.End)
	center := r.pipeline.SheetToOutput(arc.Center)
	radius := center.Distance(start)
	if radius <= 0 {
		return
	}
	sweep, large := arcFlags(center, start, end, arc.Direction)
	d := fmt.Sprintf("M %s %s A %s %s 0 %d %d %s %s",
		svg.FormatNum(start.X), svg.FormatNum(start.Y),
		svg.FormatNum(radius), svg.FormatNum(radius),
		large, sweep,
		svg.FormatNum(end.X), svg.FormatNum(end.Y))
	r.path(d, stroke, width, dash)
	r.bounds(start)
	r.bounds(end)
}

// arcFlags derives the SVG sweep and large-arc flags from an arc's stored
// direction (+1 counter-clockwise, -1 clockwise) and its endpoint angles
// around the center. The signed angular difference is corrected by 2π into
// the sweep direction's natural range; the arc is large when the corrected
// difference exceeds π in magnitude.
func arcFlags(center, start, end geom.Point, direction int) (sweep, large int) {
	a0 := math.Atan2(start.Y-center.Y, start.X-center.X)
	a1 := math.Atan2(end.Y-center.Y, end.X-center.X)
	diff := a1 - a0
	if direction > 0 {
		if diff < 0 {
			diff += 2 * math.Pi
		}
		sweep = 0
	} else {
		if diff > 0 {
			diff -= 2 * math.Pi
		}
		sweep = 1
	}
	if math.Abs(diff) > math.Pi {
		large = 1
	}
	return sweep, large
}

func (r *Renderer) renderDetailCircles(circles []record.DetailCircle) {
	if len(circles) == 0 {
		return
	}
	r.startGroup("", "detail-circles", nil)
	for i := range circles {
		c := &circles[i]
		center := r.pipeline.SheetToOutput(c.Center.XY())
		radius := c.Radius() * geom.MetersToMillimeters
		if radius <= 0 {
			continue
		}
		width := StrokeWidth(WeightThin)
		dash := DashPattern(c.LineType, width)
		r.circle(center, radius, r.stroke, width, dash)
		r.boundsBox(center, radius)
		// Arrowheads are decoded for cursor alignment but not drawn.
	}
	r.endGroup()
}

// RenderBalloons draws the sheet's callout annotations. A balloon renders
// only when it is visible and carries text; its group id derives from the
// numeric item code, and matching BOM rows contribute data attributes.
func (r *Renderer) RenderBalloons(balloons []host.Balloon) {
	if len(balloons) == 0 {
		return
	}
	r.startGroup("", "balloons", nil)
	for i := range balloons {
		r.renderBalloon(&balloons[i])
	}
	r.endGroup()
}

func (r *Renderer) renderBalloon(b *host.Balloon) {
	if !b.Visible || b.Text == "" {
		return
	}

	var data map[string]string
	if row, ok := r.rows[b.Text]; ok {
		data = map[string]string{
			"part-number":   row.PartNumber,
			"name":          row.Name,
			"specification": row.Specification,
		}
	}
	r.startGroup(balloonID(b.Text), "balloon", data)

	width := StrokeWidth(WeightNormal)
	stroke := r.color(b.Color)

	// Leaders first so the balloon outline draws on top of them.
	for _, leader := range b.Leaders {
		if len(leader) < 2 {
			continue
		}
		r.sheetPolyline(leader, stroke, width, "")
	}
	for _, seg := range b.MultiJogLeaders {
		a := r.pipeline.SheetToOutput(seg.Start)
		bEnd := r.pipeline.SheetToOutput(seg.End)
		r.line(a, bEnd, stroke, width, "")
		r.bounds(a)
		r.bounds(bEnd)
	}

	anchor := r.pipeline.SheetToOutput(b.Position)
	if b.HasBalloon {
		center := r.pipeline.SheetToOutput(b.BalloonCenter)
		radius := b.BalloonRadius * geom.MetersToMillimeters
		// Only circular outlines are drawn; the other balloon shapes
		// are an extension point.
		if b.BalloonStyle == host.BalloonCircular && radius > 0 {
			r.circle(center, radius, stroke, width, "")
			r.boundsBox(center, radius)
		}
		anchor = center
	}

	size := b.TextFormat.CharHeight * geom.MetersToMillimeters
	if size <= 0 {
		size = defaultTextSize
	}
	font := b.TextFormat.Typeface
	if font == "" {
		font = "sans-serif"
	}
	r.text(anchor, b.Text, svg.TextStyle{
		Font:     font,
		Size:     size,
		Color:    stroke,
		Anchor:   "middle",
		Baseline: "middle",
		Bold:     b.TextFormat.Bold,
		Italic:   b.TextFormat.Italic,
	})
	r.bounds(anchor)

	r.endGroup()
}

// balloonID derives a stable group id from a numeric item code, or a random
// hex id when the text is not purely numeric.
func balloonID(text string) string {
	for _, c := range text {
		if c < '0' || c > '9' {
			return fmt.Sprintf("balloon-%08x", rand.Uint32())
		}
	}
	return "balloon-" + text
}

// sheetPolyline draws a polyline given in sheet space as a single path.
func (r *Renderer) sheetPolyline(points []geom.Point, stroke string, width float64, dash string) {
	if len(points) < 2 {
		return
	}
	var sb strings.Builder
	for j, pt := range points {
		out := r.pipeline.SheetToOutput(pt)
		if j == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(svg.FormatNum(out.X))
		sb.WriteString(" ")
		sb.WriteString(svg.FormatNum(out.Y))
		r.bounds(out)
	}
	r.path(sb.String(), stroke, width, dash)
}

func (r *Renderer) color(packed int) string {
	if packed == 0 {
		return r.stroke
	}
	return PackedColor(packed)
}

// Emission helpers fan each call out to every registered document.

func (r *Renderer) startGroup(id, class string, data map[string]string) {
	for _, d := range r.docs {
		d.StartGroup(id, class, data)
	}
}

func (r *Renderer) endGroup() {
	for _, d := range r.docs {
		d.EndGroup()
	}
}

func (r *Renderer) bounds(p geom.Point) {
	for _, d := range r.docs {
		d.UpdateBounds(p.X, p.Y)
	}
}

func (r *Renderer) boundsBox(center geom.Point, radius float64) {
	r.bounds(geom.Point{X: center.X - radius, Y: center.Y - radius})
	r.bounds(geom.Point{X: center.X + radius, Y: center.Y + radius})
}

func (r *Renderer) path(d, stroke string, width float64, dash string) {
	for _, doc := range r.docs {
		doc.AddPath(d, stroke, width, "", dash)
	}
}

func (r *Renderer) line(a, b geom.Point, stroke string, width float64, dash string) {
	for _, doc := range r.docs {
		doc.AddLine(a.X, a.Y, b.X, b.Y, stroke, width, dash)
	}
}

func (r *Renderer) circle(center geom.Point, radius float64, stroke string, width float64, dash string) {
	for _, doc := range r.docs {
		doc.AddCircle(center.X, center.Y, radius, stroke, width, "", dash)
	}
}

func (r *Renderer) text(p geom.Point, s string, style svg.TextStyle) {
	for _, doc := range r.docs {
		doc.AddText(p.X, p.Y, s, style)
	}
}

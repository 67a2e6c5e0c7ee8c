package record

import "github.com/cfortier/sheetsvg/geom"

// BreakLineStyle selects one of the five break-line payload shapes.
type BreakLineStyle int

const (
	BreakStraight BreakLineStyle = iota
	BreakZigZag
	BreakSmallZigZag
	BreakCurve
	BreakJagged
)

// String returns the style name used for group classes in the output.
func (s BreakLineStyle) String() string {
	switch s {
	case BreakStraight:
		return "straight"
	case BreakZigZag:
		return "zigzag"
	case BreakSmallZigZag:
		return "small-zigzag"
	case BreakCurve:
		return "curve"
	case BreakJagged:
		return "jagged"
	}
	return "unknown"
}

// BreakSegment is a straight break-line segment, two sheet-space points.
type BreakSegment struct {
	Start geom.Point
	End   geom.Point
}

// BreakArc is one arc of a curved break line. Direction is +1 for
// counter-clockwise and -1 for clockwise sweep.
type BreakArc struct {
	Direction int
	Start     geom.Point
	End       geom.Point
	Center    geom.Point
}

// BreakLine is one decoded break-line group: shared header plus exactly one
// of the per-style payloads populated.
type BreakLine struct {
	Style         BreakLineStyle
	Color         int
	LineType      int
	LineStyle     int
	LineWeight    int
	LayerID       int
	LayerOverride int

	Segments []BreakSegment // Straight, ZigZag, SmallZigZag
	Arcs     []BreakArc     // Curve
	Splines  [][]geom.Point // Jagged
}

// breakHeaderLen is the fixed per-group header: style, color, line type,
// line style, line weight, layer id, layer override, segment count, arc
// count, spline count.
const breakHeaderLen = 10

// DecodeBreakLines decodes a break-line buffer. Each group is a 10-value
// header followed by a style-specific payload. Decoding stops quietly on an
// unknown style tag or a truncated payload; groups decoded before the stop
// are kept. Degenerate primitives (single-point lines, empty splines) are
// consumed but not emitted.
func DecodeBreakLines(data []float64) []BreakLine {
	var groups []BreakLine
	c := NewCursor(data)

	for c.Remaining() >= breakHeaderLen {
		header, ok := c.Floats(breakHeaderLen)
		if !ok {
			break
		}

		group := BreakLine{
			Style:         BreakLineStyle(int(header[0])),
			Color:         int(header[1]),
			LineType:      int(header[2]),
			LineStyle:     int(header[3]),
			LineWeight:    int(header[4]),
			LayerID:       int(header[5]),
			LayerOverride: int(header[6]),
		}
		segmentCount := int(header[7])
		arcCount := int(header[8])
		splineCount := int(header[9])

		switch group.Style {
		case BreakStraight, BreakZigZag, BreakSmallZigZag:
			segments, ok := decodeBreakSegments(c, segmentCount)
			if !ok {
				return groups
			}
			group.Segments = segments

		case BreakCurve:
			arcs, ok := decodeBreakArcs(c, arcCount)
			if !ok {
				return groups
			}
			group.Arcs = arcs

		case BreakJagged:
			splines, ok := decodeBreakSplines(c, splineCount)
			if !ok {
				return groups
			}
			group.Splines = splines

		default:
			return groups
		}

		groups = append(groups, group)
	}

	return groups
}

// decodeBreakSegments reads count pairs of two raw 3D points, dropping Z.
func decodeBreakSegments(c *Cursor, count int) ([]BreakSegment, bool) {
	segments := make([]BreakSegment, 0, count)
	for i := 0; i < count; i++ {
		start, ok := c.Point3()
		if !ok {
			return nil, false
		}
		end, ok := c.Point3()
		if !ok {
			return nil, false
		}
		segments = append(segments, BreakSegment{Start: start.XY(), End: end.XY()})
	}
	return segments, true
}

// decodeBreakArcs reads count (direction, start, end, center) tuples.
func decodeBreakArcs(c *Cursor, count int) ([]BreakArc, bool) {
	arcs := make([]BreakArc, 0, count)
	for i := 0; i < count; i++ {
		dir, ok := c.Int()
		if !ok {
			return nil, false
		}
		start, ok := c.Point3()
		if !ok {
			return nil, false
		}
		end, ok := c.Point3()
		if !ok {
			return nil, false
		}
		center, ok := c.Point3()
		if !ok {
			return nil, false
		}
		arcs = append(arcs, BreakArc{
			Direction: dir,
			Start:     start.XY(),
			End:       end.XY(),
			Center:    center.XY(),
		})
	}
	return arcs, true
}

// decodeBreakSplines reads count point lists, each prefixed by its own point
// count. Splines too short to draw are consumed and skipped.
func decodeBreakSplines(c *Cursor, count int) ([][]geom.Point, bool) {
	splines := make([][]geom.Point, 0, count)
	for i := 0; i < count; i++ {
		pointCount, ok := c.Int()
		if !ok {
			return nil, false
		}
		points, ok := c.Points3(pointCount)
		if !ok {
			return nil, false
		}
		if pointCount < 2 {
			continue
		}
		flat := make([]geom.Point, len(points))
		for j, p := range points {
			flat[j] = p.XY()
		}
		splines = append(splines, flat)
	}
	return splines, true
}

package record

import "github.com/cfortier/sheetsvg/geom"

// Arrow is one arrowhead attached to a detail circle. Arrows are decoded so
// the cursor stays aligned, but rendering them is an open extension point.
type Arrow struct {
	Tip       geom.Point3
	Companion geom.Point3
	Width     float64
	Height    float64
	Style     int
}

// DetailCircle marks the region of a main view magnified by a detail view.
type DetailCircle struct {
	Layer         int
	Center        geom.Point3
	StartPoint    geom.Point3
	EndPoint      geom.Point3
	LineType      int
	LabelPosition geom.Point3
	TextHeight    float64
	Arrows        []Arrow
}

// Radius derives the circle radius as the distance from the center to the
// start point, in the XY plane.
func (d *DetailCircle) Radius() float64 {
	return d.Center.XY().Distance(d.StartPoint.XY())
}

// detailCircleLen is the fixed leading layout per circle: layer, center,
// start, end, line type, label position, text height, arrow count.
const detailCircleLen = 16

// arrowLen is the per-arrow sub-record: tip, companion, width, height, style.
const arrowLen = 9

// DecodeDetailCircles decodes a detail-circle buffer: a 16-value record per
// circle followed by its arrow sub-records. Arrow data is always consumed,
// even though arrows are not rendered, to keep subsequent circles aligned.
// A truncated tail ends decoding, keeping complete circles.
func DecodeDetailCircles(data []float64) []DetailCircle {
	var circles []DetailCircle
	c := NewCursor(data)

	for c.Remaining() >= detailCircleLen {
		layer, _ := c.Int()
		center, _ := c.Point3()
		start, _ := c.Point3()
		end, _ := c.Point3()
		lineType, _ := c.Int()
		labelPos, _ := c.Point3()
		textHeight, _ := c.Float()
		arrowCount, _ := c.Int()

		if arrowCount < 0 || c.Remaining() < arrowCount*arrowLen {
			break
		}

		arrows := make([]Arrow, 0, arrowCount)
		for i := 0; i < arrowCount; i++ {
			tip, _ := c.Point3()
			companion, _ := c.Point3()
			width, _ := c.Float()
			height, _ := c.Float()
			style, _ := c.Int()
			arrows = append(arrows, Arrow{
				Tip:       tip,
				Companion: companion,
				Width:     width,
				Height:    height,
				Style:     style,
			})
		}

		circles = append(circles, DetailCircle{
			Layer:         layer,
			Center:        center,
			StartPoint:    start,
			EndPoint:      end,
			LineType:      lineType,
			LabelPosition: labelPos,
			TextHeight:    textHeight,
			Arrows:        arrows,
		})
	}

	return circles
}

package record

import "github.com/cfortier/sheetsvg/geom"

// PolylineKind tags the two record shapes found in a polyline buffer.
type PolylineKind int

const (
	// KindPolyline is a run of straight segments tessellating an edge.
	KindPolyline PolylineKind = 0
	// KindArc is an arc or full circle; GeomData carries center, start,
	// end, and normal vectors, three components each.
	KindArc PolylineKind = 1
)

// arcGeomDataLen is the auxiliary payload size for arc records: center,
// start, end, and normal at three components each.
const arcGeomDataLen = 12

// phantomGeomDataLen is a known encoder artifact: some hosts declare an
// auxiliary length of exactly 17 for records that carry no auxiliary data
// at all. The value must be treated as zero and the cursor must not advance.
const phantomGeomDataLen = 17

// Polyline is one decoded tessellated polyline or arc record.
type Polyline struct {
	Kind          PolylineKind
	GeomData      []float64 // non-empty only for arcs
	Color         int
	LineStyleID   int
	LineFontID    int
	LineWeight    int
	LayerID       int
	LayerOverride int
	Points        []geom.Point3 // model-space meters
}

// ArcCenter returns the arc center from the auxiliary data.
// Valid only when Kind is KindArc and GeomData is complete.
func (p *Polyline) ArcCenter() (geom.Point3, bool) {
	if p.Kind != KindArc || len(p.GeomData) < arcGeomDataLen {
		return geom.Point3{}, false
	}
	return geom.Point3{X: p.GeomData[0], Y: p.GeomData[1], Z: p.GeomData[2]}, true
}

// ArcStart returns the arc start point from the auxiliary data.
func (p *Polyline) ArcStart() (geom.Point3, bool) {
	if p.Kind != KindArc || len(p.GeomData) < arcGeomDataLen {
		return geom.Point3{}, false
	}
	return geom.Point3{X: p.GeomData[3], Y: p.GeomData[4], Z: p.GeomData[5]}, true
}

// ArcEnd returns the arc end point from the auxiliary data.
func (p *Polyline) ArcEnd() (geom.Point3, bool) {
	if p.Kind != KindArc || len(p.GeomData) < arcGeomDataLen {
		return geom.Point3{}, false
	}
	return geom.Point3{X: p.GeomData[6], Y: p.GeomData[7], Z: p.GeomData[8]}, true
}

// DecodePolylines decodes a polyline buffer. Records are read until the
// buffer runs out, a type tag outside {0, 1} appears (which also catches
// trailing zero padding after the first record), or a declared payload no
// longer fits. Complete records decoded before the stop are always returned.
func DecodePolylines(data []float64) []Polyline {
	var records []Polyline
	c := NewCursor(data)

	for c.Remaining() > 0 {
		tag, ok := c.Int()
		if !ok || (tag != int(KindPolyline) && tag != int(KindArc)) {
			break
		}

		geomLen, ok := c.Int()
		if !ok {
			break
		}
		if geomLen == phantomGeomDataLen {
			geomLen = 0
		}
		geomData, ok := c.Floats(geomLen)
		if !ok {
			break
		}

		meta, ok := c.Floats(6)
		if !ok {
			break
		}

		pointCount, ok := c.Int()
		if !ok {
			break
		}
		if pointCount <= 0 {
			// A record with no points carries no ink. An all-zero tail
			// parses as such a record, so this is also the padding stop.
			break
		}
		points, ok := c.Points3(pointCount)
		if !ok {
			break
		}

		records = append(records, Polyline{
			Kind:          PolylineKind(tag),
			GeomData:      geomData,
			Color:         int(meta[0]),
			LineStyleID:   int(meta[1]),
			LineFontID:    int(meta[2]),
			LineWeight:    int(meta[3]),
			LayerID:       int(meta[4]),
			LayerOverride: int(meta[5]),
			Points:        points,
		})
	}

	return records
}

package record

import "github.com/cfortier/sheetsvg/geom"

// Cursor reads through a flat float64 buffer with checked-length reads.
// Each read reports ok=false instead of failing when the remaining values
// are insufficient, so callers can implement the "stop, keep what you have"
// policy uniformly.
type Cursor struct {
	data []float64
	pos  int
}

// NewCursor creates a cursor over data. A nil buffer yields an exhausted
// cursor.
func NewCursor(data []float64) *Cursor {
	return &Cursor{data: data}
}

// Remaining returns the number of unread values.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Float reads one value.
func (c *Cursor) Float() (float64, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	v := c.data[c.pos]
	c.pos++
	return v, true
}

// Int reads one value and truncates it to an int. Counts and tags are stored
// as whole-number floats in the host buffers.
func (c *Cursor) Int() (int, bool) {
	v, ok := c.Float()
	if !ok {
		return 0, false
	}
	return int(v), true
}

// Floats reads n values into a fresh slice. n of zero returns an empty,
// non-nil slice without advancing.
func (c *Cursor) Floats(n int) ([]float64, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	out := make([]float64, n)
	copy(out, c.data[c.pos:c.pos+n])
	c.pos += n
	return out, true
}

// Point3 reads an (x, y, z) triple.
func (c *Cursor) Point3() (geom.Point3, bool) {
	if c.Remaining() < 3 {
		return geom.Point3{}, false
	}
	p := geom.Point3{
		X: c.data[c.pos],
		Y: c.data[c.pos+1],
		Z: c.data[c.pos+2],
	}
	c.pos += 3
	return p, true
}

// Points3 reads n consecutive (x, y, z) triples.
func (c *Cursor) Points3(n int) ([]geom.Point3, bool) {
	if n < 0 || c.Remaining() < n*3 {
		return nil, false
	}
	out := make([]geom.Point3, n)
	for i := range out {
		out[i], _ = c.Point3()
	}
	return out, true
}

// Skip advances past n values.
func (c *Cursor) Skip(n int) bool {
	if n < 0 || c.Remaining() < n {
		return false
	}
	c.pos += n
	return true
}

package geom

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Point3 represents a 3D point as delivered by the host's flat buffers.
// The Z component is carried through decoding and discarded at render time.
type Point3 struct {
	X, Y, Z float64
}

// XY drops the Z component.
func (p Point3) XY() Point {
	return Point{X: p.X, Y: p.Y}
}

// Rect represents an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the top edge Y coordinate.
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// DisjointFrom reports whether r lies entirely outside other, using the four
// half-plane exclusion tests: entirely left, right, below, or above.
func (r Rect) DisjointFrom(other Rect) bool {
	return r.Right() <= other.Left() ||
		r.Left() >= other.Right() ||
		r.Top() <= other.Bottom() ||
		r.Bottom() >= other.Top()
}

// Bounds is a running bounding box. The zero value is empty; Update on an
// empty box defines it, later updates expand it monotonically.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
	set        bool
}

// Update expands the box to include (x, y).
func (b *Bounds) Update(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX = x, x
		b.MinY, b.MaxY = y, y
		b.set = true
		return
	}
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// UpdatePoint expands the box to include p.
func (b *Bounds) UpdatePoint(p Point) {
	b.Update(p.X, p.Y)
}

// IsSet reports whether any point has been recorded.
func (b *Bounds) IsSet() bool {
	return b.set
}

// Width returns the horizontal extent, or 0 for an empty box.
func (b *Bounds) Width() float64 {
	if !b.set {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent, or 0 for an empty box.
func (b *Bounds) Height() float64 {
	if !b.set {
		return 0
	}
	return b.MaxY - b.MinY
}

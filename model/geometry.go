package model

import "math"

// Tolerance is the distance in page units below which two coordinates
// are considered equal.
const Tolerance = 3.0

// Point represents a 2D point in page units.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle. Before normalization (X, Y)
// is the PDF lower-left corner; after normalization it is the top-left
// corner and larger Y means visually lower on the page.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from coordinates.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromPoints creates the rectangle spanned by two corner points.
func NewRectFromPoints(p1, p2 Point) Rect {
	return Rect{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Intersect returns the intersection of two rectangles, or the zero
// rectangle when they are disjoint.
func (r Rect) Intersect(other Rect) Rect {
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	right := math.Min(r.X+r.Width, other.X+other.Width)
	top := math.Min(r.Y+r.Height, other.Y+other.Height)

	if right <= x || top <= y {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: right - x, Height: top - y}
}

// Rotate90 rotates the rectangle a quarter turn clockwise about the origin.
func (r Rect) Rotate90() Rect {
	return Rect{
		X:      -(r.Y + r.Height),
		Y:      r.X,
		Width:  r.Height,
		Height: r.Width,
	}
}

// PercentOfIn returns the percentage of a's area that lies inside b.
// A zero-area a yields zero.
func PercentOfIn(a, b Rect) float64 {
	if a.Area() == 0 {
		return 0
	}
	return 100 * a.Intersect(b).Area() / a.Area()
}

// HorizontalOverlapPercent returns the overlap of the two rectangles'
// X projections as a percentage of their union. Zero if either width is
// zero or the projections are disjoint.
func HorizontalOverlapPercent(r1, r2 Rect) float64 {
	if r1.Width == 0 || r2.Width == 0 {
		return 0
	}

	left := math.Max(r1.Left(), r2.Left())
	right := math.Min(r1.Right(), r2.Right())
	if right <= left {
		return 0
	}

	unionLeft := math.Min(r1.Left(), r2.Left())
	unionRight := math.Max(r1.Right(), r2.Right())

	return 100 * (right - left) / (unionRight - unionLeft)
}

// Line represents a straight segment between two points.
type Line struct {
	Start Point
	End   Point
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// IntersectLines returns the intersection point of two segments. The
// second return value is false when either segment is degenerate, the
// segments are parallel, or the crossing lies outside either segment.
func IntersectLines(l1, l2 Line) (Point, bool) {
	if l1.Length() == 0 || l2.Length() == 0 {
		return Point{}, false
	}

	d1x := l1.End.X - l1.Start.X
	d1y := l1.End.Y - l1.Start.Y
	d2x := l2.End.X - l2.Start.X
	d2y := l2.End.Y - l2.Start.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Point{}, false
	}

	sx := l2.Start.X - l1.Start.X
	sy := l2.Start.Y - l1.Start.Y

	t := (sx*d2y - sy*d2x) / denom
	u := (sx*d1y - sy*d1x) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{X: l1.Start.X + t*d1x, Y: l1.Start.Y + t*d1y}, true
}

// Matrix represents a 2D affine transformation matrix [a b c d e f].
type Matrix [6]float64

// Identity returns an identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply composes the matrix with another: the receiver is applied
// first, then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

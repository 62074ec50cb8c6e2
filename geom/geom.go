// Package geom provides validated 2D geometric primitives: points with
// distance operations, and box/ellipse/triangle values whose constructors
// reject degenerate input.
//
// Constructors report rejection through a comma-ok result instead of an
// error; a false ok means the candidate shape failed validation.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// DistanceSquared returns the squared distance to q. It avoids the square
// root, which is enough for comparisons.
func (p Point) DistanceSquared(q Point) float64 {
	d := mgl64.Vec2{p.X - q.X, p.Y - q.Y}
	return d.Dot(d)
}

// Distance returns the distance to q.
func (p Point) Distance(q Point) float64 {
	d := mgl64.Vec2{p.X - q.X, p.Y - q.Y}
	return d.Len()
}

// Box is an axis-aligned box. Width and Height are strictly positive for any
// Box obtained from NewBox.
type Box struct {
	Origin Point
	Width  float64
	Height float64
}

// NewBox validates and builds an axis-aligned box. ok is false when width or
// height is not strictly positive.
func NewBox(origin Point, width, height float64) (Box, bool) {
	if !(width > 0) || !(height > 0) {
		return Box{}, false
	}
	return Box{Origin: origin, Width: width, Height: height}, true
}

// Ellipse is a rotated ellipse. Both radii are strictly positive for any
// Ellipse obtained from NewEllipse.
type Ellipse struct {
	Center  Point
	RadiusX float64
	RadiusY float64
	Angle   float64 // rotation of the local x-axis against the global x-axis
}

// NewEllipse validates and builds an ellipse. ok is false when either radius
// is not strictly positive. The angle is unconstrained.
func NewEllipse(center Point, radiusX, radiusY, angle float64) (Ellipse, bool) {
	if !(radiusX > 0) || !(radiusY > 0) {
		return Ellipse{}, false
	}
	return Ellipse{Center: center, RadiusX: radiusX, RadiusY: radiusY, Angle: angle}, true
}

// Triangle is a 2D triangle whose area passed a minimum-area check at
// construction.
type Triangle struct {
	points [3]Point
}

// NewTriangle validates and builds a triangle from three points. ok is false
// when the area computed by Heron's formula is below minArea or is not a
// number (near-collinear points can push the formula negative before the
// square root).
func NewTriangle(p1, p2, p3 Point, minArea float64) (Triangle, bool) {
	tri := Triangle{points: [3]Point{p1, p2, p3}}
	area := tri.Area()
	if math.IsNaN(area) || area < minArea {
		return Triangle{}, false
	}
	return tri, true
}

// Points returns the triangle's vertices.
func (t Triangle) Points() [3]Point {
	return t.points
}

// Area returns the triangle's area, computed with Heron's formula from the
// three pairwise edge lengths.
func (t Triangle) Area() float64 {
	a := t.points[0].Distance(t.points[1])
	b := t.points[1].Distance(t.points[2])
	c := t.points[2].Distance(t.points[0])

	s := 0.5 * (a + b + c)
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

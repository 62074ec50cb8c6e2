package geom

import (
	"math"
	"testing"
)

func TestDistanceSquared(t *testing.T) {
	p := Point{X: 1, Y: 4}
	q := Point{X: 5, Y: 7}

	if got := p.DistanceSquared(q); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
	if got := q.DistanceSquared(p); got != 25 {
		t.Errorf("DistanceSquared should be symmetric, got %v", got)
	}
}

func TestDistance(t *testing.T) {
	p := Point{X: 1, Y: 4}
	q := Point{X: 5, Y: 7}

	if got := p.Distance(q); got != 5.0 {
		t.Errorf("Distance = %v, want 5.0", got)
	}
	if got := p.Distance(p); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestNewBox(t *testing.T) {
	box, ok := NewBox(Point{X: 1, Y: 2}, 3, 4)
	if !ok {
		t.Fatal("valid box rejected")
	}
	if box.Width != 3 || box.Height != 4 {
		t.Errorf("box dimensions %vx%v, want 3x4", box.Width, box.Height)
	}

	if _, ok := NewBox(Point{}, 0, 4); ok {
		t.Error("zero-width box accepted")
	}
	if _, ok := NewBox(Point{}, 3, -1); ok {
		t.Error("negative-height box accepted")
	}
}

func TestNewEllipse(t *testing.T) {
	e, ok := NewEllipse(Point{X: 1, Y: 1}, 2, 3, math.Pi/4)
	if !ok {
		t.Fatal("valid ellipse rejected")
	}
	if e.RadiusX != 2 || e.RadiusY != 3 {
		t.Errorf("ellipse radii %v, %v, want 2, 3", e.RadiusX, e.RadiusY)
	}

	if _, ok := NewEllipse(Point{}, -1, 3, 0); ok {
		t.Error("negative x-radius accepted")
	}
	if _, ok := NewEllipse(Point{}, 2, 0, 0); ok {
		t.Error("zero y-radius accepted")
	}
}

func TestNewTriangle(t *testing.T) {
	o := Point{X: 0, Y: 0}
	x := Point{X: 3, Y: 0}
	y := Point{X: 0, Y: 4}

	tri, ok := NewTriangle(o, x, y, 1e-3)
	if !ok {
		t.Fatal("3-4-5 triangle rejected")
	}
	if got := tri.Area(); math.Abs(got-6.0) > 1e-12 {
		t.Errorf("Area = %v, want 6.0", got)
	}

	pts := tri.Points()
	if pts[0] != o || pts[1] != x || pts[2] != y {
		t.Errorf("Points = %v, want the construction order", pts)
	}
}

func TestNewTriangleRejectsSmallArea(t *testing.T) {
	o := Point{X: 0, Y: 0}
	x := Point{X: 3, Y: 0}
	y := Point{X: 0, Y: 4}

	// Area is 6; a threshold above that must reject.
	if _, ok := NewTriangle(o, x, y, 6.5); ok {
		t.Error("triangle below the minimum area accepted")
	}
}

func TestNewTriangleRejectsCollinearPoints(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 1, Y: 1}
	c := Point{X: 2, Y: 2}

	if _, ok := NewTriangle(a, b, c, 1e-9); ok {
		t.Error("collinear triangle accepted")
	}
}

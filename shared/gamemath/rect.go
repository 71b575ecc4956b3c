// Package gamemath holds the pure rectangle math shared by the simulation
// systems. It has no dependencies on ebitengine, donburi or resolv.
package gamemath

import "math"

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box. Coordinates are whole pixels stored as floats;
// edges follow the half-open convention, so Right and Bottom lie just outside.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX and CenterY round the half extent down to a whole pixel.
func (r Rect) CenterX() float64 { return r.X + math.Floor(r.W/2) }
func (r Rect) CenterY() float64 { return r.Y + math.Floor(r.H/2) }

func (r Rect) TopLeft() Point     { return Point{r.Left(), r.Top()} }
func (r Rect) MidTop() Point      { return Point{r.CenterX(), r.Top()} }
func (r Rect) TopRight() Point    { return Point{r.Right(), r.Top()} }
func (r Rect) MidLeft() Point     { return Point{r.Left(), r.CenterY()} }
func (r Rect) MidRight() Point    { return Point{r.Right(), r.CenterY()} }
func (r Rect) BottomLeft() Point  { return Point{r.Left(), r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// SidePoints are the points sampled for horizontal hits: the bottom corners
// and the middle of both vertical edges.
func (r Rect) SidePoints() []Point {
	return []Point{r.BottomLeft(), r.MidLeft(), r.BottomRight(), r.MidRight()}
}

// TopPoints are the points sampled for landing on a surface.
func (r Rect) TopPoints() []Point {
	return []Point{r.TopLeft(), r.MidTop(), r.TopRight()}
}

// Contains reports whether p is inside r. Points on the right or bottom edge
// are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// ContainsAny reports whether any of pts is inside r.
func (r Rect) ContainsAny(pts []Point) bool {
	for _, p := range pts {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Overlaps reports whether the two rectangles share area. Touching edges do
// not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

package vscene

import "math"

// Rect represents an axis-aligned rectangle in x, y, width, height form.
// X and Y locate the top-left corner (minimum coordinates).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromPoints creates a rectangle spanning two points.
// The points are normalized so width and height are non-negative.
func RectFromPoints(p1, p2 Point) Rect {
	minX := math.Min(p1.X, p2.X)
	minY := math.Min(p1.Y, p2.Y)
	return Rect{
		X:      minX,
		Y:      minY,
		Width:  math.Max(p1.X, p2.X) - minX,
		Height: math.Max(p1.Y, p2.Y) - minY,
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ContainsPoint returns true if the point (x, y) is inside the rectangle.
// Points on the boundary are considered inside.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Inflate returns the rectangle grown by w on each axis, shifted by -w/2
// so it remains centered on the original.
func (r Rect) Inflate(w float64) Rect {
	return Rect{
		X:      r.X - w/2,
		Y:      r.Y - w/2,
		Width:  r.Width + w,
		Height: r.Height + w,
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

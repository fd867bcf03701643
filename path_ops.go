package vscene

import "math"

// Containment predicates, bounding-box computation, and flattening over the
// recorded geometry. These run on the cached buffer in local coordinates;
// the hit-test engine inverse-transforms points before calling them.

// flattenTolerance is the maximum distance a flattened polyline may deviate
// from the true curve.
const flattenTolerance = 0.1

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for the non-zero fill rule).
// Uses ray casting with a horizontal ray to the right.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case QuadTo:
			winding += quadWinding(current, e.Control, e.Point, pt)
			current = e.Point
		case CubicTo:
			winding += cubicWinding(current, e.Control1, e.Control2, e.Point, pt)
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
		}
	}

	return winding
}

// ContainsFill tests if a point lies inside the filled region of the path
// using the non-zero winding rule. Subpaths that were never closed are
// treated as implicitly closed, matching how fills rasterize.
func (p *Path) ContainsFill(x, y float64) bool {
	pt := Pt(x, y)
	var winding int
	var current, start Point
	var open bool

	closeSubpath := func() {
		if open && current != start {
			winding += lineWinding(current, start, pt)
		}
		open = false
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			closeSubpath()
			start = e.Point
			current = e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
			open = true
		case QuadTo:
			winding += quadWinding(current, e.Control, e.Point, pt)
			current = e.Point
			open = true
		case CubicTo:
			winding += cubicWinding(current, e.Control1, e.Control2, e.Point, pt)
			current = e.Point
			open = true
		case Close:
			closeSubpath()
			current = start
		}
	}
	closeSubpath()

	return winding != 0
}

// ContainsStroke tests if a point lies within width/2 of the stroked outline.
// The width is the effective line width already normalized for the current
// transform scale by the caller.
func (p *Path) ContainsStroke(width, x, y float64) bool {
	if width <= 0 {
		return false
	}
	pt := Pt(x, y)
	half := width / 2
	halfSq := half * half

	for _, poly := range p.collectPolylines(flattenTolerance) {
		for i := 1; i < len(poly); i++ {
			if segmentDistanceSquared(poly[i-1], poly[i], pt) <= halfSq {
				return true
			}
		}
	}
	return false
}

// segmentDistanceSquared returns the squared distance from pt to the
// segment p0-p1.
func segmentDistanceSquared(p0, p1, pt Point) float64 {
	d := p1.Sub(p0)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return pt.Sub(p0).LengthSquared()
	}
	t := pt.Sub(p0).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pt.Sub(p0.Lerp(p1, t)).LengthSquared()
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return p1.Sub(p0).Cross(pt.Sub(p0))
}

// quadWinding computes the winding contribution of a quadratic Bezier.
func quadWinding(p0, p1, p2, pt Point) int {
	// Early exit if the point is outside the vertical range
	minY := math.Min(math.Min(p0.Y, p1.Y), p2.Y)
	maxY := math.Max(math.Max(p0.Y, p1.Y), p2.Y)
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}

	// Early exit if the point is to the right of the curve
	maxX := math.Max(math.Max(p0.X, p1.X), p2.X)
	if pt.X > maxX {
		return 0
	}

	var winding int
	flattenQuadWindingRecursive(NewQuadBez(p0, p1, p2), pt, flattenTolerance, &winding)
	return winding
}

// flattenQuadWindingRecursive recursively subdivides and accumulates winding.
func flattenQuadWindingRecursive(q QuadBez, pt Point, tolerance float64, winding *int) {
	// Flatness test: distance from control point to chord midpoint
	mid := q.P0.Lerp(q.P2, 0.5)
	dist := q.P1.Sub(mid).Length()

	if dist <= tolerance {
		*winding += lineWinding(q.P0, q.P2, pt)
		return
	}

	q1, q2 := q.Subdivide()
	flattenQuadWindingRecursive(q1, pt, tolerance, winding)
	flattenQuadWindingRecursive(q2, pt, tolerance, winding)
}

// cubicWinding computes the winding contribution of a cubic Bezier.
func cubicWinding(p0, p1, p2, p3, pt Point) int {
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}

	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	if pt.X > maxX {
		return 0
	}

	var winding int
	flattenCubicWindingRecursive(NewCubicBez(p0, p1, p2, p3), pt, flattenTolerance, &winding)
	return winding
}

// flattenCubicWindingRecursive recursively subdivides and accumulates winding.
func flattenCubicWindingRecursive(c CubicBez, pt Point, tolerance float64, winding *int) {
	if cubicFlatness(c) <= 16*tolerance*tolerance {
		*winding += lineWinding(c.P0, c.P3, pt)
		return
	}

	c1, c2 := c.Subdivide()
	flattenCubicWindingRecursive(c1, pt, tolerance, winding)
	flattenCubicWindingRecursive(c2, pt, tolerance, winding)
}

// BoundingBox returns the tight axis-aligned bounding box of the recorded
// geometry in local coordinates. Uses curve extrema for accuracy.
// An empty path yields the zero rectangle.
func (p *Path) BoundingBox() Rect {
	var bbox Rect
	var started bool
	var current Point

	expand := func(r Rect) {
		if !started {
			bbox = r
			started = true
			return
		}
		bbox = bbox.Union(r)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			expand(Rect{X: e.Point.X, Y: e.Point.Y})
			current = e.Point
		case LineTo:
			expand(Rect{X: e.Point.X, Y: e.Point.Y})
			current = e.Point
		case QuadTo:
			expand(NewQuadBez(current, e.Control, e.Point).BoundingBox())
			current = e.Point
		case CubicTo:
			expand(NewCubicBez(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		case Close:
			// Close adds no new points
		}
	}

	if !started {
		return Rect{}
	}
	return bbox
}

// collectPolylines flattens the path into one polyline per subpath.
// Closed subpaths include the closing segment back to their start point.
func (p *Path) collectPolylines(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = flattenTolerance
	}

	var polys [][]Point
	var poly []Point
	var current, start Point

	flush := func() {
		if len(poly) > 1 {
			polys = append(polys, poly)
		}
		poly = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			poly = append(poly, e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			poly = append(poly, e.Point)
			current = e.Point
		case QuadTo:
			flattenQuadRecursive(NewQuadBez(current, e.Control, e.Point), tolerance*tolerance, func(pt Point) {
				poly = append(poly, pt)
			})
			current = e.Point
		case CubicTo:
			flattenCubicRecursive(NewCubicBez(current, e.Control1, e.Control2, e.Point), tolerance*tolerance, func(pt Point) {
				poly = append(poly, pt)
			})
			current = e.Point
		case Close:
			if current != start {
				poly = append(poly, start)
			}
			current = start
			flush()
		}
	}
	flush()

	return polys
}

// flattenQuadRecursive recursively subdivides the quadratic, emitting endpoints.
func flattenQuadRecursive(q QuadBez, toleranceSq float64, fn func(pt Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	dist := q.P1.Sub(mid)
	if dist.LengthSquared() <= toleranceSq {
		fn(q.P2)
		return
	}

	q1, q2 := q.Subdivide()
	flattenQuadRecursive(q1, toleranceSq, fn)
	flattenQuadRecursive(q2, toleranceSq, fn)
}

// flattenCubicRecursive recursively subdivides the cubic, emitting endpoints.
func flattenCubicRecursive(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	if cubicFlatness(c) <= toleranceSq*16 {
		fn(c.P3)
		return
	}

	c1, c2 := c.Subdivide()
	flattenCubicRecursive(c1, toleranceSq, fn)
	flattenCubicRecursive(c2, toleranceSq, fn)
}

package vscene

import "math"

// PathElement represents a single element in a recorded path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a recorded sequence of path-construction commands supporting both
// fresh recording and replay against a drawing surface. A Shape owns exactly
// one Path as its geometry cache; the buffer is never shared between shapes.
//
// Path is not safe for concurrent use.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point

	// Dash state configured before recording when dashes must be
	// software-rendered. Replay chops strokes into dash segments when set.
	dash       []float64
	dashOffset float64
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// Begin resets the path for a fresh recording, reusing the element storage.
// Any previously configured dash state is cleared; callers that need
// software dashing configure it again before building.
func (p *Path) Begin() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.dash = nil
	p.dashOffset = 0
}

// Len returns the number of recorded elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Elements returns the recorded path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// SetLineDash configures a dash pattern into the recording.
// Used when the drawing surface lacks native dash support and the replay
// must emit pre-chopped dash segments.
func (p *Path) SetLineDash(pattern []float64) {
	p.dash = pattern
}

// SetLineDashOffset configures the starting offset into the dash pattern.
func (p *Path) SetLineDashOffset(offset float64) {
	p.dashOffset = offset
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// ClosePath closes the current subpath by drawing a line to the start point.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.ClosePath()
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.ClosePath()
}

// Arc adds a circular arc to the path.
// The arc is drawn from angle1 to angle2 (in radians) around center (cx, cy).
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// Split into multiple cubic Bezier curves, at most 90 degrees each.
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

// arcSegment adds a single arc segment (at most 90 degrees).
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	} else {
		p.LineTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// RoundedRectangle adds a rectangle with rounded corners.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.ClosePath()
}

// Polygon adds a closed polygon through the given points.
// Fewer than two points record nothing.
func (p *Path) Polygon(points []Point) {
	if len(points) < 2 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.ClosePath()
}

// Replay emits the recorded commands to the surface without re-deriving
// points. When a software dash pattern is configured, strokes are chopped
// into alternating on/off segments during emission instead.
func (p *Path) Replay(s Surface) {
	if len(p.dash) > 0 {
		p.replayDashed(s)
		return
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			s.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			s.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			s.QuadTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			s.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			s.ClosePath()
		}
	}
}

// replayDashed flattens each subpath and emits alternating dash segments.
func (p *Path) replayDashed(s Surface) {
	pattern := p.dash
	if len(pattern)%2 == 1 {
		// Odd-length patterns are logically duplicated to even length.
		pattern = append(append([]float64{}, pattern...), pattern...)
	}

	for _, poly := range p.collectPolylines(flattenTolerance) {
		emitDashedPolyline(s, poly, pattern, p.dashOffset)
	}
}

// emitDashedPolyline walks the polyline emitting MoveTo/LineTo pairs for the
// "on" runs of the dash pattern, starting offset units into the cycle.
func emitDashedPolyline(s Surface, poly []Point, pattern []float64, offset float64) {
	if len(poly) < 2 {
		return
	}

	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return
	}

	// Advance to the pattern position selected by the offset.
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}
	idx := 0
	remaining := pattern[0]
	for offset > 0 {
		if offset < remaining {
			remaining -= offset
			break
		}
		offset -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
	}

	on := idx%2 == 0
	penDown := false

	for i := 1; i < len(poly); i++ {
		p0 := poly[i-1]
		p1 := poly[i]
		segLen := p0.Distance(p1)
		pos := 0.0

		for segLen-pos > 1e-12 {
			step := math.Min(remaining, segLen-pos)
			t0 := pos / segLen
			t1 := (pos + step) / segLen
			a := p0.Lerp(p1, t0)
			b := p0.Lerp(p1, t1)

			if on {
				if !penDown {
					s.MoveTo(a.X, a.Y)
					penDown = true
				}
				s.LineTo(b.X, b.Y)
			} else {
				penDown = false
			}

			pos += step
			remaining -= step
			if remaining <= 1e-12 {
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				on = idx%2 == 0
				if !on {
					penDown = false
				}
			}
		}
	}
}

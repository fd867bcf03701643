package vscene

import "math"

// Built-in shape kinds. Each is an ordinary Kind value fed through Extend,
// exercising the same extension machinery available to callers.

// RectKind draws an axis-aligned rectangle, optionally with rounded
// corners. Shape keys: x, y, width, height, r (corner radius).
var RectKind = Kind{
	Name: "rect",
	Build: func(p *Path, shape ShapeParams) {
		x := shape.Float("x", 0)
		y := shape.Float("y", 0)
		w := shape.Float("width", 0)
		h := shape.Float("height", 0)
		if r := shape.Float("r", 0); r > 0 {
			p.RoundedRectangle(x, y, w, h, r)
			return
		}
		p.Rectangle(x, y, w, h)
	},
	DefaultShape: ShapeParams{"x": 0.0, "y": 0.0, "width": 0.0, "height": 0.0},
}

// CircleKind draws a circle. Shape keys: cx, cy, r.
var CircleKind = Kind{
	Name: "circle",
	Build: func(p *Path, shape ShapeParams) {
		p.Circle(shape.Float("cx", 0), shape.Float("cy", 0), shape.Float("r", 0))
	},
	DefaultShape: ShapeParams{"cx": 0.0, "cy": 0.0, "r": 0.0},
}

// EllipseKind draws an axis-aligned ellipse. Shape keys: cx, cy, rx, ry.
var EllipseKind = Kind{
	Name: "ellipse",
	Build: func(p *Path, shape ShapeParams) {
		p.Ellipse(shape.Float("cx", 0), shape.Float("cy", 0),
			shape.Float("rx", 0), shape.Float("ry", 0))
	},
	DefaultShape: ShapeParams{"cx": 0.0, "cy": 0.0, "rx": 0.0, "ry": 0.0},
}

// RingKind draws an annulus: outer radius r, inner radius r0. The inner
// circle runs in the opposite direction so the non-zero fill rule leaves
// the hole empty. Shape keys: cx, cy, r, r0.
var RingKind = Kind{
	Name: "ring",
	Build: func(p *Path, shape ShapeParams) {
		cx := shape.Float("cx", 0)
		cy := shape.Float("cy", 0)
		r := shape.Float("r", 0)
		r0 := shape.Float("r0", 0)
		p.Circle(cx, cy, r)
		reversedCircle(p, cx, cy, r0)
	},
	DefaultShape: ShapeParams{"cx": 0.0, "cy": 0.0, "r": 0.0, "r0": 0.0},
}

// PolygonKind draws a closed polygon. Shape key: points ([]Point).
var PolygonKind = Kind{
	Name: "polygon",
	Build: func(p *Path, shape ShapeParams) {
		p.Polygon(shape.Points("points"))
	},
	DefaultShape: ShapeParams{"points": []Point(nil)},
}

// StarKind draws an n-pointed star alternating between the outer radius r
// and the inner radius r0 (default r/2). Shape keys: cx, cy, points, r, r0.
var StarKind = Kind{
	Name: "star",
	Build: func(p *Path, shape ShapeParams) {
		cx := shape.Float("cx", 0)
		cy := shape.Float("cy", 0)
		n := int(shape.Float("points", 5))
		r := shape.Float("r", 0)
		r0 := shape.Float("r0", r/2)
		if n < 2 || r <= 0 {
			return
		}

		step := math.Pi / float64(n)
		angle := -math.Pi / 2 // first point straight up
		p.MoveTo(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		for i := 1; i < 2*n; i++ {
			radius := r
			if i%2 == 1 {
				radius = r0
			}
			a := angle + float64(i)*step
			p.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		}
		p.ClosePath()
	},
	DefaultShape: ShapeParams{"cx": 0.0, "cy": 0.0, "points": 5.0, "r": 0.0},
}

// LineKind draws a straight line segment. Lines have no interior, so the
// default style paints stroke only. Shape keys: x1, y1, x2, y2.
var LineKind = Kind{
	Name: "line",
	Build: func(p *Path, shape ShapeParams) {
		p.MoveTo(shape.Float("x1", 0), shape.Float("y1", 0))
		p.LineTo(shape.Float("x2", 0), shape.Float("y2", 0))
	},
	DefaultShape: ShapeParams{"x1": 0.0, "y1": 0.0, "x2": 0.0, "y2": 0.0},
	DefaultStyle: StyleParams{"fill": "none", "stroke": "black"},
}

// Constructors for the built-in kinds.
var (
	NewRect    = Extend(RectKind)
	NewCircle  = Extend(CircleKind)
	NewEllipse = Extend(EllipseKind)
	NewRing    = Extend(RingKind)
	NewPolygon = Extend(PolygonKind)
	NewStar    = Extend(StarKind)
	NewLine    = Extend(LineKind)
)

// reversedCircle records a circle with reversed orientation, used for
// cutting holes under the non-zero winding rule.
func reversedCircle(p *Path, cx, cy, r float64) {
	if r <= 0 {
		return
	}
	const k = 0.5522847498307936
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy-offset, cx+offset, cy-r, cx, cy-r)
	p.CubicTo(cx-offset, cy-r, cx-r, cy-offset, cx-r, cy)
	p.CubicTo(cx-r, cy+offset, cx-offset, cy+r, cx, cy+r)
	p.CubicTo(cx+offset, cy+r, cx+r, cy+offset, cx+r, cy)
	p.ClosePath()
}

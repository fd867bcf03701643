package vscene

import (
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is implemented by gradient brushes whose coordinates may be
// relative to a target's bounding rectangle. Resolving maps the relative
// coordinates into absolute local space; resolution happens once per paint
// cycle, before geometry is consumed, because the bounds may have changed
// even when the gradient itself did not.
type Gradient interface {
	Brush

	// Resolve returns a brush with absolute coordinates mapped into r.
	// Gradients already in absolute coordinates return themselves.
	Resolve(r Rect) Brush
}

// LinearGradient is a linear color transition between two points.
// Coordinates are fractions of the target bounding rect unless
// GlobalCoords is set, in which case they are absolute local coordinates.
type LinearGradient struct {
	X0, Y0 float64     // Start point
	X1, Y1 float64     // End point
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How the gradient extends beyond bounds

	// GlobalCoords marks the coordinates as absolute rather than
	// bounding-rect relative.
	GlobalCoords bool
}

// NewLinearGradient creates a bounding-rect-relative linear gradient
// from (x0, y0) to (x1, y1), each component in [0, 1].
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the sealed Brush interface.
func (*LinearGradient) brushMarker() {}

// Resolve implements Gradient. Relative coordinates are mapped into the
// rectangle; absolute gradients are returned unchanged.
func (g *LinearGradient) Resolve(r Rect) Brush {
	if g.GlobalCoords {
		return g
	}
	return &LinearGradient{
		X0:           r.X + g.X0*r.Width,
		Y0:           r.Y + g.Y0*r.Height,
		X1:           r.X + g.X1*r.Width,
		Y1:           r.Y + g.Y1*r.Height,
		Stops:        g.Stops,
		Extend:       g.Extend,
		GlobalCoords: true,
	}
}

// ColorAt returns the gradient color at the given point.
// Meaningful only for resolved (absolute-coordinate) gradients.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project the point onto the gradient line.
	px := x - g.X0
	py := y - g.Y0
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}

// RadialGradient is a radial color transition from a center point outward.
// Coordinates and radius are fractions of the target bounding rect unless
// GlobalCoords is set. The relative radius scales with the smaller of the
// rect's dimensions.
type RadialGradient struct {
	CX, CY float64     // Center
	R      float64     // Radius
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How the gradient extends beyond bounds

	// GlobalCoords marks the coordinates as absolute rather than
	// bounding-rect relative.
	GlobalCoords bool
}

// NewRadialGradient creates a bounding-rect-relative radial gradient
// centered at (cx, cy) with radius r, each component in [0, 1].
func NewRadialGradient(cx, cy, r float64) *RadialGradient {
	return &RadialGradient{CX: cx, CY: cy, R: r}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the sealed Brush interface.
func (*RadialGradient) brushMarker() {}

// Resolve implements Gradient.
func (g *RadialGradient) Resolve(r Rect) Brush {
	if g.GlobalCoords {
		return g
	}
	return &RadialGradient{
		CX:           r.X + g.CX*r.Width,
		CY:           r.Y + g.CY*r.Height,
		R:            g.R * math.Min(r.Width, r.Height),
		Stops:        g.Stops,
		Extend:       g.Extend,
		GlobalCoords: true,
	}
}

// ColorAt returns the gradient color at the given point.
// Meaningful only for resolved (absolute-coordinate) gradients.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.R <= 0 {
		return firstStopColor(g.Stops)
	}
	dx := x - g.CX
	dy := y - g.CY
	t := math.Sqrt(dx*dx+dy*dy) / g.R
	return colorAtOffset(g.Stops, t, g.Extend)
}

// sortStops returns the stops sorted by offset without modifying the input.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// firstStopColor returns the first stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// colorAtOffset interpolates the stop colors at offset t under the
// given extend mode.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}

	t = applyExtendMode(t, mode)
	sorted := sortStops(stops)

	if t <= sorted[0].Offset {
		return sorted[0].Color
	}
	last := sorted[len(sorted)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(sorted); i++ {
		if t <= sorted[i].Offset {
			lo, hi := sorted[i-1], sorted[i]
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Color
			}
			return lerpColor(lo.Color, hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}

// applyExtendMode normalizes t to [0, 1] under the extend mode.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// lerpColor linearly interpolates between two colors.
func lerpColor(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: c1.R + (c2.R-c1.R)*t,
		G: c1.G + (c2.G-c1.G)*t,
		B: c1.B + (c2.B-c1.B)*t,
		A: c1.A + (c2.A-c1.A)*t,
	}
}

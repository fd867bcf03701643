package vscene

import (
	"fmt"

	"github.com/gogpu/vscene/label"
)

// Surface is the drawing backend a shape paints onto. Implementations
// translate the calls to their output: raster pixels, GPU command lists,
// or vector export formats.
//
// NativeDash is a capability resolved once per surface binding: surfaces
// that cannot dash natively receive pre-chopped dash segments from the
// geometry replay instead of SetLineDash calls.
type Surface interface {
	// Path construction, in local coordinates.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	// Paint state.
	SetFillBrush(b Brush)
	SetStrokeBrush(b Brush)
	SetLineWidth(w float64)
	SetLineDash(pattern []float64, offset float64)

	// Painting the constructed path.
	Fill(rule FillRule)
	Stroke()

	// DrawLabel draws a text-label attachment anchored at (x, y).
	DrawLabel(l *label.Label, x, y float64)

	// NativeDash reports whether the surface dashes strokes natively.
	NativeDash() bool
}

// SurfaceOp is one recorded drawing call.
type SurfaceOp struct {
	Name string
	Args []float64
}

// String formats the op for test failure messages.
func (op SurfaceOp) String() string {
	return fmt.Sprintf("%s%v", op.Name, op.Args)
}

// RecordingSurface is a Surface that records every call, for tests and for
// verifying replay fidelity. The zero value records with native dash
// support disabled.
type RecordingSurface struct {
	// Ops is the recorded call sequence.
	Ops []SurfaceOp

	// SupportsDash configures the NativeDash capability.
	SupportsDash bool

	// Last-set paint state.
	FillBrush   Brush
	StrokeBrush Brush
	LineWidth   float64
	DashPattern []float64
	DashOffset  float64

	// Labels drawn, with their anchors.
	Labels []DrawnLabel
}

// DrawnLabel records one DrawLabel call.
type DrawnLabel struct {
	Label *label.Label
	X, Y  float64
}

func (r *RecordingSurface) record(name string, args ...float64) {
	r.Ops = append(r.Ops, SurfaceOp{Name: name, Args: args})
}

// MoveTo implements Surface.
func (r *RecordingSurface) MoveTo(x, y float64) { r.record("MoveTo", x, y) }

// LineTo implements Surface.
func (r *RecordingSurface) LineTo(x, y float64) { r.record("LineTo", x, y) }

// QuadTo implements Surface.
func (r *RecordingSurface) QuadTo(cx, cy, x, y float64) { r.record("QuadTo", cx, cy, x, y) }

// CubicTo implements Surface.
func (r *RecordingSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record("CubicTo", c1x, c1y, c2x, c2y, x, y)
}

// ClosePath implements Surface.
func (r *RecordingSurface) ClosePath() { r.record("ClosePath") }

// SetFillBrush implements Surface.
func (r *RecordingSurface) SetFillBrush(b Brush) {
	r.FillBrush = b
	r.record("SetFillBrush")
}

// SetStrokeBrush implements Surface.
func (r *RecordingSurface) SetStrokeBrush(b Brush) {
	r.StrokeBrush = b
	r.record("SetStrokeBrush")
}

// SetLineWidth implements Surface.
func (r *RecordingSurface) SetLineWidth(w float64) {
	r.LineWidth = w
	r.record("SetLineWidth", w)
}

// SetLineDash implements Surface.
func (r *RecordingSurface) SetLineDash(pattern []float64, offset float64) {
	r.DashPattern = pattern
	r.DashOffset = offset
	r.record("SetLineDash")
}

// Fill implements Surface.
func (r *RecordingSurface) Fill(rule FillRule) { r.record("Fill", float64(rule)) }

// Stroke implements Surface.
func (r *RecordingSurface) Stroke() { r.record("Stroke") }

// DrawLabel implements Surface.
func (r *RecordingSurface) DrawLabel(l *label.Label, x, y float64) {
	r.Labels = append(r.Labels, DrawnLabel{Label: l, X: x, Y: y})
	r.record("DrawLabel", x, y)
}

// NativeDash implements Surface.
func (r *RecordingSurface) NativeDash() bool { return r.SupportsDash }

// PathOps returns only the path-construction ops, for comparing geometry
// emission across paint cycles.
func (r *RecordingSurface) PathOps() []SurfaceOp {
	var ops []SurfaceOp
	for _, op := range r.Ops {
		switch op.Name {
		case "MoveTo", "LineTo", "QuadTo", "CubicTo", "ClosePath":
			ops = append(ops, op)
		}
	}
	return ops
}

// Reset clears the recorded state for reuse.
func (r *RecordingSurface) Reset() {
	r.Ops = nil
	r.FillBrush = nil
	r.StrokeBrush = nil
	r.LineWidth = 0
	r.DashPattern = nil
	r.DashOffset = 0
	r.Labels = nil
}

package vscene

import "math"

// strokeContainMargin is the minimum effective stroke width, in device
// units, used for bounds inflation and stroke hit-testing. It guarantees a
// visually perceptible margin for near-zero-width or heavily down-scaled
// strokes.
const strokeContainMargin = 5.0

// Shape is a drawable vector-path entity in the scene graph. It owns a
// recorded geometry buffer that is rebuilt only when shape parameters
// actually changed and replayed from cache otherwise, keeps a memoized
// stroke-inclusive bounding rectangle, and answers transform-aware hit
// tests.
//
// Shapes are created through kind constructors produced by Extend, or the
// built-in ones in shapes.go. All operations run synchronously on the
// caller's goroutine; a single logical thread is assumed to drive the
// whole scene per frame.
type Shape struct {
	Element

	// Style holds the paint attributes.
	Style *Style

	kind  Kind
	shape ShapeParams

	// geometry is the owned recording buffer. It is exclusively owned by
	// this shape and replaced only by rebuild, never shared.
	geometry *Path

	// dirtyPath means the cached geometry is stale relative to the shape
	// parameters.
	dirtyPath bool

	// rect is the cached stroke-inclusive bounding rectangle. Non-nil only
	// while dirtyPath is false; invalidated together with it.
	rect *Rect

	// Resolved gradient paints, recomputed when the bounding rect moves.
	resolvedFill   Brush
	resolvedStroke Brush
	resolvedRect   Rect

	// clipDependents lists entities that use this shape as their clip
	// region. A lookup relation, not ownership: dirtiness propagates along
	// these edges, lifetimes do not.
	clipDependents []Dirtier
}

// Kind returns the shape-kind name this shape was constructed from.
func (sh *Shape) Kind() string {
	return sh.kind.Name
}

// ShapeValue returns the value stored under a shape parameter key.
func (sh *Shape) ShapeValue(key string) (any, bool) {
	v, ok := sh.shape[key]
	return v, ok
}

// SetShape sets one shape parameter and marks the geometry dirty.
// It is a no-op (but still returns the shape for chaining) when the shape
// table is absent, which permits shape-less path variants built purely from
// recorded commands.
func (sh *Shape) SetShape(key string, value any) *Shape {
	if sh.shape == nil {
		return sh
	}
	sh.shape[key] = value
	sh.MarkDirty(true)
	return sh
}

// MergeShape merges the parameters key-by-key into the shape table and
// marks the geometry dirty. No-op when the shape table is absent.
func (sh *Shape) MergeShape(params ShapeParams) *Shape {
	if sh.shape == nil {
		return sh
	}
	for key, value := range params {
		sh.shape[key] = value
	}
	sh.MarkDirty(true)
	return sh
}

// SetStyle applies the style parameters and marks the shape stale without
// invalidating the cached geometry or bounds. Callers that change stroke
// width and need updated bounds must mark the geometry dirty themselves;
// see BoundingRect.
func (sh *Shape) SetStyle(params StyleParams) *Shape {
	params.apply(sh.Style)
	sh.resolvedFill = nil
	sh.resolvedStroke = nil
	sh.MarkDirty(false)
	return sh
}

// MarkDirty marks the shape stale and notifies the attached scheduler that
// a repaint is owed. With rebuildGeometry true the cached geometry and
// bounding rect are invalidated as well.
//
// Dirtiness propagates to entities that use this shape as their clip
// region. Marking is monotonic within a paint cycle: only a successful
// rebuild clears the geometry flag.
func (sh *Shape) MarkDirty(rebuildGeometry bool) {
	if rebuildGeometry {
		sh.dirtyPath = true
		sh.rect = nil
	}
	sh.dirty = true
	sh.notifyScheduler()
	for _, dep := range sh.clipDependents {
		dep.MarkDirty(true)
	}
}

// BindClip registers an entity that uses this shape as its clip region, so
// that geometry changes here propagate dirtiness to it.
func (sh *Shape) BindClip(dep Dirtier) {
	sh.clipDependents = append(sh.clipDependents, dep)
}

// UnbindClip tears down a clip relationship established with BindClip.
func (sh *Shape) UnbindClip(dep Dirtier) {
	for i, d := range sh.clipDependents {
		if d == dep {
			sh.clipDependents = append(sh.clipDependents[:i], sh.clipDependents[i+1:]...)
			return
		}
	}
}

// rebuildGeometry records fresh geometry from the current shape parameters
// and clears the geometry dirty flag. Paint and dash state are untouched.
func (sh *Shape) rebuildGeometry() {
	sh.geometry.Begin()
	if sh.kind.Build != nil {
		sh.kind.Build(sh.geometry, sh.shape)
	}
	sh.dirtyPath = false
}

// BoundingRect returns the shape's stroke-inclusive axis-aligned bounds in
// local coordinates. The result is memoized; it is invalidated whenever the
// geometry is marked dirty, but NOT by style-only changes such as a line
// width edit.
func (sh *Shape) BoundingRect() Rect {
	if sh.rect != nil {
		return *sh.rect
	}

	if sh.dirtyPath {
		sh.rebuildGeometry()
	}
	rect := sh.geometry.BoundingBox()

	if sh.Style.StrokeActive() {
		rect = rect.Inflate(sh.effectiveLineWidth())
	}

	sh.rect = &rect
	return rect
}

// effectiveLineWidth is the stroke width normalized into local space for
// the current transform scale, with the minimum perceptible margin applied.
func (sh *Shape) effectiveLineWidth() float64 {
	scale := LineScaleOf(sh.Transform)
	return math.Max(sh.Style.LineWidth*scale, strokeContainMargin) / scale
}

// Contains reports whether the point, given in the parent coordinate
// space, hits the shape. The bounding rect serves as a cheap reject before
// the precise fill/stroke containment tests run on the cached geometry.
// The stroke band is tested before the fill so a shape with both paints
// active reports a hit on either.
func (sh *Shape) Contains(x, y float64) bool {
	local := Pt(x, y)
	if sh.Transform != nil {
		local = sh.Transform.Invert().TransformPoint(local)
	}

	rect := sh.BoundingRect()
	if !rect.ContainsPoint(local.X, local.Y) {
		return false
	}

	st := sh.Style
	if st.StrokeActive() {
		if sh.geometry.ContainsStroke(sh.effectiveLineWidth(), local.X, local.Y) {
			return true
		}
	}
	if st.FillActive() {
		return sh.geometry.ContainsFill(local.X, local.Y)
	}
	return false
}

// PreparePaint brings the geometry buffer up to date and emits it to the
// surface. The buffer is rebuilt when the geometry is dirty, or when a
// dashed stroke must be software-rendered because the surface lacks native
// dash support; otherwise the previous recording is replayed as a pure
// cache hit.
//
// Gradient paints are resolved against the current bounding rect first:
// the bounds may have changed even if the gradient object did not.
func (sh *Shape) PreparePaint(s Surface) {
	sh.resolvePaints()

	softwareDash := sh.softwareDash(s)
	if sh.dirtyPath || softwareDash {
		sh.geometry.Begin()
		if softwareDash {
			sh.geometry.SetLineDash(sh.Style.LineDash.Array)
			sh.geometry.SetLineDashOffset(sh.Style.LineDash.Offset)
		}
		if sh.kind.Build != nil {
			sh.kind.Build(sh.geometry, sh.shape)
		}
		sh.dirtyPath = false
		logger().Debug("geometry rebuilt", "kind", sh.kind.Name, "elements", sh.geometry.Len())
	} else {
		logger().Debug("geometry replayed", "kind", sh.kind.Name, "elements", sh.geometry.Len())
	}

	sh.geometry.Replay(s)
}

// softwareDash reports whether the dash pattern must be chopped into the
// geometry because the surface cannot dash natively.
func (sh *Shape) softwareDash(s Surface) bool {
	return sh.Style.StrokeActive() && sh.Style.LineDash != nil && !s.NativeDash()
}

// resolvePaints resolves active gradient fill/stroke paints against the
// current bounding rect. Resolution is cached per rect: an unchanged rect
// reuses the previously resolved brushes.
func (sh *Shape) resolvePaints() {
	st := sh.Style
	fillGrad, fillIsGrad := st.Fill.(Gradient)
	strokeGrad, strokeIsGrad := st.Stroke.(Gradient)
	needFill := fillIsGrad && st.FillActive()
	needStroke := strokeIsGrad && st.StrokeActive()
	if !needFill && !needStroke {
		return
	}

	rect := sh.BoundingRect()
	if needFill && (sh.resolvedFill == nil || rect != sh.resolvedRect) {
		sh.resolvedFill = fillGrad.Resolve(rect)
	}
	if needStroke && (sh.resolvedStroke == nil || rect != sh.resolvedRect) {
		sh.resolvedStroke = strokeGrad.Resolve(rect)
	}
	sh.resolvedRect = rect
}

// paintBrush returns the brush to hand the surface for a paint: the
// resolved form for gradients, the styled brush otherwise.
func paintBrush(styled, resolved Brush) Brush {
	if resolved != nil {
		return resolved
	}
	return styled
}

// Paint draws the shape onto the surface: applies the paint state, brings
// the geometry up to date via PreparePaint, issues the fill and stroke, and
// draws the label attachment anchored at the bounding rect. Completing a
// paint clears the repaint-owed flag.
func (sh *Shape) Paint(s Surface) {
	st := sh.Style

	sh.PreparePaint(s)

	if st.FillActive() {
		s.SetFillBrush(paintBrush(st.Fill, sh.resolvedFill))
		s.Fill(st.FillRule)
	}
	if st.StrokeActive() {
		s.SetStrokeBrush(paintBrush(st.Stroke, sh.resolvedStroke))
		s.SetLineWidth(st.LineWidth)
		if st.LineDash != nil && s.NativeDash() {
			s.SetLineDash(st.LineDash.Array, st.LineDash.Offset)
		}
		s.Stroke()
	}

	if st.Label != nil {
		rect := sh.BoundingRect()
		s.DrawLabel(st.Label, rect.X+st.Label.OffsetX, rect.Y+st.Label.OffsetY)
	}

	sh.dirty = false
}

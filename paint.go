package vscene

import "github.com/gogpu/vscene/label"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Style holds the paint attributes of a shape.
//
// A nil or None fill/stroke deactivates that paint. A stroke additionally
// requires LineWidth > 0 to be active.
type Style struct {
	// Fill is the fill paint.
	Fill Brush

	// Stroke is the stroke paint.
	Stroke Brush

	// LineWidth is the nominal stroke width, before transform scaling.
	LineWidth float64

	// LineDash is the dash pattern, nil for solid strokes.
	// Its Offset field is the dash offset.
	LineDash *Dash

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// FillRule is the fill rule for self-intersecting geometry.
	FillRule FillRule

	// Label is an optional text-label attachment drawn with the shape.
	Label *label.Label
}

// NewStyle creates a Style with default values: black fill, no stroke,
// 1px line width.
func NewStyle() *Style {
	return &Style{
		Fill:       Solid(Black),
		LineWidth:  1.0,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10.0,
		FillRule:   FillRuleNonZero,
	}
}

// FillActive reports whether the fill paint would draw: the fill brush is
// non-nil and not the literal "none".
func (st *Style) FillActive() bool {
	return st != nil && brushActive(st.Fill)
}

// StrokeActive reports whether the stroke paint would draw: the stroke brush
// is non-nil, not "none", and the line width is positive.
func (st *Style) StrokeActive() bool {
	return st != nil && brushActive(st.Stroke) && st.LineWidth > 0
}

// StyleParams is an ordered-by-key table of style attributes used for
// construction options and kind defaults. Presence of a key records an
// explicit construction-time choice; defaults merge only into absent keys.
//
// Recognized keys:
//   - "fill", "stroke": Brush, RGBA, or a color string ("red", "#ff0000",
//     or "none")
//   - "lineWidth": float64
//   - "lineDash": []float64 or *Dash
//   - "lineDashOffset": float64
//   - "label": *label.Label
type StyleParams map[string]any

// apply writes the recognized keys onto the style. Unknown keys are ignored.
func (sp StyleParams) apply(st *Style) {
	for key, value := range sp {
		switch key {
		case "fill":
			st.Fill = toBrush(value)
		case "stroke":
			st.Stroke = toBrush(value)
		case "lineWidth":
			if w, ok := toFloat(value); ok {
				st.LineWidth = w
			}
		case "lineDash":
			switch v := value.(type) {
			case *Dash:
				st.LineDash = v
			case []float64:
				st.LineDash = NewDash(v...)
			case nil:
				st.LineDash = nil
			}
		case "label":
			if l, ok := value.(*label.Label); ok {
				st.Label = l
			}
		}
	}

	// lineDashOffset depends on lineDash being set, and map iteration order
	// is unspecified; apply it after all other keys.
	if v, ok := sp["lineDashOffset"]; ok {
		if off, ok := toFloat(v); ok && st.LineDash != nil {
			st.LineDash = st.LineDash.WithOffset(off)
		}
	}
}

// toBrush coerces a style value into a Brush.
// Strings are parsed as colors; the literal "none" yields None.
// Unparseable values yield nil (inactive paint).
func toBrush(value any) Brush {
	switch v := value.(type) {
	case Brush:
		return v
	case RGBA:
		return Solid(v)
	case string:
		if v == "none" {
			return None
		}
		if c, ok := ParseColor(v); ok {
			return Solid(c)
		}
		return nil
	}
	return nil
}

// toFloat coerces numeric style/shape values to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

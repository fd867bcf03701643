package vscene

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - LinearGradient, RadialGradient: gradient fills resolved against the
//     target shape's bounding rectangle (see gradient.go)
//   - None: the explicit "paint nothing" sentinel
//
// A nil Brush and None both deactivate the corresponding paint.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex creates a SolidBrush from a hex color string.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// noneBrush is the "none" paint: present but explicitly inactive.
type noneBrush struct{}

func (noneBrush) brushMarker() {}

// None is the literal "none" paint. Setting it on a fill or stroke
// deactivates that paint without clearing the brush field.
var None Brush = noneBrush{}

// brushActive reports whether a brush would put paint on the surface.
func brushActive(b Brush) bool {
	if b == nil {
		return false
	}
	_, none := b.(noneBrush)
	return !none
}

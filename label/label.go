package label

import "image/color"

// Label is a text attachment on a scene shape. The owning shape anchors it
// at its bounding rectangle plus the offset; the surface draws it.
type Label struct {
	// Text is the label text, a single line.
	Text string

	// Face measures the text. Nil faces measure zero and leave rendering
	// entirely to the surface.
	Face *Face

	// Color is the text color.
	Color color.Color

	// OffsetX and OffsetY displace the label from the shape's
	// bounding-rect origin.
	OffsetX, OffsetY float64
}

// New creates a label with the given text and face.
func New(text string, face *Face) *Label {
	return &Label{Text: text, Face: face, Color: color.Black}
}

// WithOffset returns the label displaced by (dx, dy), for chaining.
func (l *Label) WithOffset(dx, dy float64) *Label {
	l.OffsetX = dx
	l.OffsetY = dy
	return l
}

// Bounds returns the measured width and height of the label text.
// Labels without a face measure zero.
func (l *Label) Bounds() (width, height float64) {
	if l == nil {
		return 0, 0
	}
	return l.Face.Measure(l.Text)
}

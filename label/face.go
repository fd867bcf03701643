// Package label provides text-label attachments for scene shapes: a label
// carries its own face, color, and offset, and is drawn by the surface at an
// anchor the owning shape computes from its bounds.
//
// Shaping and measurement use go-text/typesetting, the same HarfBuzz-level
// backend used elsewhere in the gogpu ecosystem.
package label

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Face is a parsed font at a specific size, used to measure label text.
// The underlying font.Font is read-only and safe for concurrent use; the
// per-call font.Face instances are created fresh since they are not.
type Face struct {
	font *font.Font
	size float64
}

// NewFaceFromBytes parses TTF/OTF font data and returns a Face at the
// given size in pixels.
func NewFaceFromBytes(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("label: invalid face size %v", size)
	}
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("label: parse font: %w", err)
	}
	return &Face{font: parsed.Font, size: size}, nil
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Measure shapes the text and returns its advance width and line height
// in pixels. Empty text measures zero by zero.
func (f *Face) Measure(text string) (width, height float64) {
	if f == nil || text == "" {
		return 0, 0
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.font),
		Size:      floatToFixed(f.size),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)

	width = fixedToFloat(output.Advance)
	height = fixedToFloat(output.LineBounds.Ascent) - fixedToFloat(output.LineBounds.Descent)
	return width, height
}

// floatToFixed converts a float64 to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts 26.6 fixed point to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

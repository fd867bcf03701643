package label

import (
	"image/color"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	l := New("hello", nil)
	if l.Text != "hello" {
		t.Errorf("Text = %q, want %q", l.Text, "hello")
	}
	if l.Color != color.Black {
		t.Errorf("Color = %v, want black", l.Color)
	}
	if l.OffsetX != 0 || l.OffsetY != 0 {
		t.Errorf("offset = (%v, %v), want (0, 0)", l.OffsetX, l.OffsetY)
	}
}

func TestWithOffset(t *testing.T) {
	l := New("hi", nil).WithOffset(3, -4)
	if l.OffsetX != 3 || l.OffsetY != -4 {
		t.Errorf("offset = (%v, %v), want (3, -4)", l.OffsetX, l.OffsetY)
	}
}

func TestBoundsWithoutFace(t *testing.T) {
	w, h := New("unmeasured", nil).Bounds()
	if w != 0 || h != 0 {
		t.Errorf("Bounds() = (%v, %v), want (0, 0)", w, h)
	}

	var nilLabel *Label
	if w, h := nilLabel.Bounds(); w != 0 || h != 0 {
		t.Errorf("nil label Bounds() = (%v, %v), want (0, 0)", w, h)
	}
}

func TestFaceMeasureEmpty(t *testing.T) {
	var f *Face
	if w, h := f.Measure("text"); w != 0 || h != 0 {
		t.Errorf("nil face Measure = (%v, %v), want (0, 0)", w, h)
	}
}

func TestNewFaceFromBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size float64
	}{
		{"garbage data", []byte("not a font"), 12},
		{"zero size", nil, 0},
		{"negative size", nil, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFaceFromBytes(tt.data, tt.size); err == nil {
				t.Error("NewFaceFromBytes() error = nil, want error")
			}
		})
	}
}

package vscene

import (
	"math"
	"testing"
)

func TestRingContainment(t *testing.T) {
	sh := NewRing(Options{
		Shape: ShapeParams{"cx": 0.0, "cy": 0.0, "r": 10.0, "r0": 4.0},
		Style: StyleParams{"fill": "red"},
	})

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"band", 7, 0, true},
		{"band diagonal", 5, 5, true},
		{"hole center", 0, 0, false},
		{"inside hole", 2, 0, false},
		{"outside ring", 11, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sh.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRingBoundingRect(t *testing.T) {
	sh := NewRing(Options{
		Shape: ShapeParams{"cx": 0.0, "cy": 0.0, "r": 10.0, "r0": 4.0},
		Style: StyleParams{"fill": "red"},
	})
	got := sh.BoundingRect()
	if !almostEqual(got.X, -10, 1e-6) || !almostEqual(got.Width, 20, 1e-6) {
		t.Errorf("BoundingRect() = %+v, want x=-10 width=20", got)
	}
}

func TestStarGeometry(t *testing.T) {
	sh := NewStar(Options{
		Shape: ShapeParams{"cx": 0.0, "cy": 0.0, "points": 5.0, "r": 10.0},
		Style: StyleParams{"fill": "red"},
	})

	// First vertex points straight up, so the bounds reach y = -10 exactly.
	rect := sh.BoundingRect()
	if !almostEqual(rect.Y, -10, 1e-9) {
		t.Errorf("BoundingRect().Y = %v, want -10", rect.Y)
	}
	if rect.Width <= 0 || rect.Width > 20 {
		t.Errorf("BoundingRect().Width = %v, want in (0, 20]", rect.Width)
	}

	// Center is inside; the valley between two outer points is not.
	if !sh.Contains(0, 0) {
		t.Error("Contains(0, 0) = false, want true")
	}
	// A point in the valley direction beyond the inner radius is outside.
	if sh.Contains(4.7, -6.5) {
		t.Error("Contains(4.7, -6.5) = true in the valley between tips, want false")
	}
	if sh.Contains(9, 9) {
		t.Error("Contains(9, 9) = true outside the star, want false")
	}
}

func TestStarDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		shape ShapeParams
	}{
		{"zero radius", ShapeParams{"points": 5.0, "r": 0.0}},
		{"one point", ShapeParams{"points": 1.0, "r": 10.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := NewStar(Options{Shape: tt.shape})
			if got := sh.BoundingRect(); !got.IsEmpty() {
				t.Errorf("BoundingRect() = %+v, want empty", got)
			}
		})
	}
}

func TestStarInnerRadiusDefault(t *testing.T) {
	sh := NewStar(Options{
		Shape: ShapeParams{"cx": 0.0, "cy": 0.0, "points": 4.0, "r": 10.0},
		Style: StyleParams{"fill": "red"},
	})

	// A 4-point star with r0 = r/2 has its right-hand inner vertex at
	// distance 5 along the 45-degree diagonal.
	inner := 5 / math.Sqrt2
	if !sh.Contains(inner-1, inner-1) {
		t.Errorf("Contains just inside inner vertex = false, want true")
	}
	if sh.Contains(inner+1, inner+1) {
		t.Errorf("Contains just outside inner vertex = true, want false")
	}
}

func TestPolygonShape(t *testing.T) {
	sh := NewPolygon(Options{
		Shape: ShapeParams{"points": []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}},
		Style: StyleParams{"fill": "red"},
	})

	if got, want := sh.BoundingRect(), (Rect{X: 0, Y: 0, Width: 10, Height: 10}); got != want {
		t.Errorf("BoundingRect() = %+v, want %+v", got, want)
	}
	if !sh.Contains(5, 3) {
		t.Error("Contains(5, 3) = false inside triangle, want true")
	}
	if sh.Contains(1, 9) {
		t.Error("Contains(1, 9) = true outside triangle, want false")
	}
}

func TestLineDefaultStyle(t *testing.T) {
	sh := NewLine(Options{
		Shape: ShapeParams{"x1": 0.0, "y1": 0.0, "x2": 10.0, "y2": 0.0},
	})

	if sh.Style.FillActive() {
		t.Error("line FillActive() = true, want false (default fill none)")
	}
	if !sh.Style.StrokeActive() {
		t.Error("line StrokeActive() = false, want true (default black stroke)")
	}

	// Hit-testing a line works purely through the stroke band: width 1
	// floors to the 5-unit margin, so the band is 2.5 either side.
	if !sh.Contains(5, 2) {
		t.Error("Contains(5, 2) = false in stroke band, want true")
	}
	if sh.Contains(5, 4) {
		t.Error("Contains(5, 4) = true outside stroke band, want false")
	}
}

func TestLineStyleOverride(t *testing.T) {
	sh := NewLine(Options{
		Shape: ShapeParams{"x2": 10.0},
		Style: StyleParams{"stroke": "red", "lineWidth": 2.0},
	})
	sb, ok := sh.Style.Stroke.(SolidBrush)
	if !ok {
		t.Fatalf("line stroke brush = %T, want SolidBrush", sh.Style.Stroke)
	}
	if sb.Color != Red {
		t.Errorf("line stroke color = %v, want Red", sb.Color)
	}
	if sh.Style.LineWidth != 2 {
		t.Errorf("LineWidth = %v, want 2", sh.Style.LineWidth)
	}
}

func TestEllipseShape(t *testing.T) {
	sh := NewEllipse(Options{
		Shape: ShapeParams{"cx": 0.0, "cy": 0.0, "rx": 10.0, "ry": 5.0},
		Style: StyleParams{"fill": "red"},
	})

	rect := sh.BoundingRect()
	if !almostEqual(rect.Width, 20, 1e-6) || !almostEqual(rect.Height, 10, 1e-6) {
		t.Errorf("BoundingRect() = %+v, want 20x10", rect)
	}
	if !sh.Contains(8, 0) {
		t.Error("Contains(8, 0) = false inside ellipse, want true")
	}
	if sh.Contains(8, 4) {
		t.Error("Contains(8, 4) = true outside ellipse, want false")
	}
}

func TestRoundedRectCorners(t *testing.T) {
	sh := NewRect(Options{
		Shape: ShapeParams{"x": 0.0, "y": 0.0, "width": 20.0, "height": 20.0, "r": 5.0},
		Style: StyleParams{"fill": "red"},
	})

	if !sh.Contains(10, 10) {
		t.Error("Contains(10, 10) = false at center, want true")
	}
	// The sharp corner of the plain rect is shaved off by the radius.
	if sh.Contains(0.5, 0.5) {
		t.Error("Contains(0.5, 0.5) = true outside rounded corner, want false")
	}
	// Just inside the corner arc.
	if !sh.Contains(2.5, 2.5) {
		t.Error("Contains(2.5, 2.5) = false inside rounded corner, want true")
	}
}

func TestKindName(t *testing.T) {
	tests := []struct {
		name string
		sh   *Shape
		want string
	}{
		{"rect", NewRect(Options{}), "rect"},
		{"circle", NewCircle(Options{}), "circle"},
		{"ring", NewRing(Options{}), "ring"},
		{"star", NewStar(Options{}), "star"},
		{"line", NewLine(Options{}), "line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sh.Kind(); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

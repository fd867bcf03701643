package vscene

import (
	"testing"
)

func TestPathRecording(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0, 10)
	p.ClosePath()

	if got := p.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}

	elems := p.Elements()
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("Elements()[0] = %T, want MoveTo", elems[0])
	}
	if lt, ok := elems[1].(LineTo); !ok || lt.Point != Pt(10, 0) {
		t.Errorf("Elements()[1] = %v, want LineTo (10, 0)", elems[1])
	}
	if qt, ok := elems[2].(QuadTo); !ok || qt.Control != Pt(15, 5) {
		t.Errorf("Elements()[2] = %v, want QuadTo with control (15, 5)", elems[2])
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("Elements()[4] = %T, want Close", elems[4])
	}
}

func TestPathBeginReset(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	if p.Len() == 0 {
		t.Fatal("Rectangle recorded no elements")
	}

	p.SetLineDash([]float64{4, 2})
	p.Begin()

	if got := p.Len(); got != 0 {
		t.Errorf("Len() after Begin = %d, want 0", got)
	}
	if p.dash != nil {
		t.Errorf("dash after Begin = %v, want nil", p.dash)
	}

	// The buffer must be fully usable for a fresh recording.
	p.Circle(0, 0, 5)
	if p.Len() == 0 {
		t.Error("Circle after Begin recorded no elements")
	}
}

func TestPathReplayFidelity(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)
	p.ClosePath()

	first := &RecordingSurface{}
	p.Replay(first)
	second := &RecordingSurface{}
	p.Replay(second)

	want := []SurfaceOp{
		{Name: "MoveTo", Args: []float64{1, 2}},
		{Name: "LineTo", Args: []float64{3, 4}},
		{Name: "QuadTo", Args: []float64{5, 6, 7, 8}},
		{Name: "CubicTo", Args: []float64{9, 10, 11, 12, 13, 14}},
		{Name: "ClosePath", Args: nil},
	}

	for phase, got := range map[string][]SurfaceOp{"first": first.Ops, "second": second.Ops} {
		if len(got) != len(want) {
			t.Fatalf("%s replay recorded %d ops, want %d", phase, len(got), len(want))
		}
		for i := range want {
			if got[i].Name != want[i].Name || len(got[i].Args) != len(want[i].Args) {
				t.Errorf("%s replay op %d = %v, want %v", phase, i, got[i], want[i])
				continue
			}
			for j := range want[i].Args {
				if got[i].Args[j] != want[i].Args[j] {
					t.Errorf("%s replay op %d = %v, want %v", phase, i, got[i], want[i])
					break
				}
			}
		}
	}
}

func TestPathReplayDashed(t *testing.T) {
	// A 10-unit horizontal line with a [4 2] pattern yields on-runs
	// [0,4], [6,10]: two MoveTo/LineTo pairs and nothing else.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.SetLineDash([]float64{4, 2})

	s := &RecordingSurface{}
	p.Replay(s)

	var moves, lines int
	for _, op := range s.Ops {
		switch op.Name {
		case "MoveTo":
			moves++
		case "LineTo":
			lines++
		default:
			t.Errorf("dashed replay emitted unexpected op %v", op)
		}
	}
	if moves != 2 {
		t.Errorf("dashed replay MoveTo count = %d, want 2", moves)
	}
	if lines < 2 {
		t.Errorf("dashed replay LineTo count = %d, want at least 2", lines)
	}

	// The dashed spans must cover 4 + 4 = 8 of the 10 units.
	var covered float64
	var cur Point
	for _, op := range s.Ops {
		switch op.Name {
		case "MoveTo":
			cur = Pt(op.Args[0], op.Args[1])
		case "LineTo":
			next := Pt(op.Args[0], op.Args[1])
			covered += cur.Distance(next)
			cur = next
		}
	}
	if !almostEqual(covered, 8, 1e-9) {
		t.Errorf("dashed replay covered length = %v, want 8", covered)
	}
}

func TestPathReplayDashedOffset(t *testing.T) {
	// Offset 4 starts the cycle in the gap: on-runs are [2,6] and [8,10],
	// covering 6 units.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.SetLineDash([]float64{4, 2})
	p.SetLineDashOffset(4)

	s := &RecordingSurface{}
	p.Replay(s)

	var covered float64
	var cur Point
	for _, op := range s.Ops {
		switch op.Name {
		case "MoveTo":
			cur = Pt(op.Args[0], op.Args[1])
		case "LineTo":
			next := Pt(op.Args[0], op.Args[1])
			covered += cur.Distance(next)
			cur = next
		}
	}
	if !almostEqual(covered, 6, 1e-9) {
		t.Errorf("dashed replay with offset covered length = %v, want 6", covered)
	}
}

func TestPathPolygonTooFewPoints(t *testing.T) {
	p := NewPath()
	p.Polygon([]Point{{X: 1, Y: 1}})
	if got := p.Len(); got != 0 {
		t.Errorf("Polygon with one point recorded %d elements, want 0", got)
	}
}

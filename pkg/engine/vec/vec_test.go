package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
	if got := Dist(a, b); math.Abs(got-math.Sqrt(40)) > 1e-12 {
		t.Errorf("Dist = %v", got)
	}
}

func TestNormalize(t *testing.T) {
	n := (Vec2{X: 0, Y: -7}).Normalize()
	if n != (Vec2{X: 0, Y: -1}) {
		t.Errorf("Normalize = %+v, want (0, -1)", n)
	}

	// The zero vector normalizes to itself instead of NaN.
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize of zero = %+v", got)
	}
}

func TestDistToSegment(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 4, Y: 0}

	// Point beside the middle of the segment.
	if got := DistToSegment(Vec2{X: 2, Y: 3}, a, b); got != 3 {
		t.Errorf("DistToSegment mid = %v, want 3", got)
	}
	// Point past an endpoint clamps to that endpoint.
	if got := DistToSegment(Vec2{X: -3, Y: 4}, a, b); got != 5 {
		t.Errorf("DistToSegment past end = %v, want 5", got)
	}
	// Point on the segment.
	if got := DistToSegment(Vec2{X: 1, Y: 0}, a, b); got != 0 {
		t.Errorf("DistToSegment on segment = %v, want 0", got)
	}
	// Degenerate segment is plain point distance.
	if got := DistToSegment(Vec2{X: 3, Y: 4}, a, a); got != 5 {
		t.Errorf("DistToSegment degenerate = %v, want 5", got)
	}
}

package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNormalize_ZeroVectorIsNoOp(t *testing.T) {
	v := Vector2{}.Normalize()
	if !v.IsZero() {
		t.Errorf("Expected zero vector to stay zero, got %+v", v)
	}
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Errorf("Normalize of zero vector produced NaN: %+v", v)
	}
}

func TestNormalize_UnitLength(t *testing.T) {
	v := Vec(3, 4).Normalize()
	if !approx(v.Length(), 1) {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !approx(v.X, 0.6) || !approx(v.Y, 0.8) {
		t.Errorf("Expected (0.6, 0.8), got %+v", v)
	}
}

func TestScaleToLength(t *testing.T) {
	tests := []struct {
		name   string
		in     Vector2
		length float64
		want   Vector2
	}{
		{"zero stays zero", Vector2{}, 10, Vector2{}},
		{"shrink", Vec(6, 8), 5, Vec(3, 4)},
		{"grow", Vec(0, -2), 10, Vec(0, -10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ScaleToLength(tt.length)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestClampLength(t *testing.T) {
	if got := Vec(1, 1).ClampLength(10); got != Vec(1, 1) {
		t.Errorf("Short vector should be unchanged, got %+v", got)
	}
	got := Vec(30, 40).ClampLength(10)
	if !approx(got.Length(), 10) {
		t.Errorf("Expected length 10, got %f", got.Length())
	}
}

func TestRotate(t *testing.T) {
	got := Vec(0, -1).Rotate(90)
	if !approx(got.X, 1) || !approx(got.Y, 0) {
		t.Errorf("Expected (1, 0) after rotating (0, -1) by 90, got %+v", got)
	}
	back := got.Rotate(-90)
	if !approx(back.X, 0) || !approx(back.Y, -1) {
		t.Errorf("Expected rotation to be reversible, got %+v", back)
	}
}

func TestAddSubScale(t *testing.T) {
	v := Vec(1, 2).Add(Vec(3, 4)).Sub(Vec(1, 1)).Scale(2)
	if v != Vec(6, 10) {
		t.Errorf("Expected (6, 10), got %+v", v)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := RectAround(Vec(100, 100), 40, 70)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same spot", RectAround(Vec(100, 100), 40, 70), true},
		{"partial", RectAround(Vec(130, 150), 40, 70), true},
		{"touching edge", RectAround(Vec(140, 100), 40, 70), false},
		{"far away", RectAround(Vec(400, 400), 40, 70), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRectOverlapsCircle(t *testing.T) {
	r := RectAround(Vec(100, 100), 40, 70)
	if !r.OverlapsCircle(Vec(100, 100), 15) {
		t.Error("Circle at rect centre should overlap")
	}
	if !r.OverlapsCircle(Vec(130, 100), 15) {
		t.Error("Circle reaching into the side should overlap")
	}
	if r.OverlapsCircle(Vec(140, 150), 15) {
		t.Error("Circle beyond the corner should not overlap")
	}
}

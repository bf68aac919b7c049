package random

import "testing"

func TestIntRange_Bounds(t *testing.T) {
	src := New(42)
	for i := 0; i < 1000; i++ {
		v := IntRange(src, 60, 180)
		if v < 60 || v > 180 {
			t.Fatalf("Expected value in [60, 180], got %d", v)
		}
	}
}

func TestIntRange_Degenerate(t *testing.T) {
	if got := IntRange(New(1), 5, 5); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
}

func TestUniform_Bounds(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(src, -3, 3)
		if v < -3 || v >= 3 {
			t.Fatalf("Expected value in [-3, 3), got %f", v)
		}
	}
}

func TestSequence_ReplaysThenFallsBack(t *testing.T) {
	s := &Sequence{Ints: []int{2, 7}, Floats: []float64{0.25}, IntFallback: 1, FloatFallback: 0.9}

	if got := s.Intn(3); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	if got := s.Intn(3); got != 1 {
		t.Errorf("Expected 7 mod 3 = 1, got %d", got)
	}
	if got := s.Intn(3); got != 1 {
		t.Errorf("Expected fallback 1, got %d", got)
	}
	if got := s.Float64(); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
	if got := s.Float64(); got != 0.9 {
		t.Errorf("Expected fallback 0.9, got %f", got)
	}
}

func TestChance(t *testing.T) {
	s := &Sequence{Floats: []float64{0.1, 0.5}}
	if !Chance(s, 0.3) {
		t.Error("0.1 < 0.3 should pass")
	}
	if Chance(s, 0.3) {
		t.Error("0.5 < 0.3 should fail")
	}
}

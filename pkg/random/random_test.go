package random

import "testing"

func TestRand_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if av, bv := a.Intn(1000), b.Intn(1000); av != bv {
			t.Fatalf("Sequences diverged at step %d: %d vs %d", i, av, bv)
		}
	}
}

func TestRand_Seed(t *testing.T) {
	r := New(7)
	if r.Seed() != 7 {
		t.Errorf("Expected seed 7, got %d", r.Seed())
	}
}

// fixedSource returns preset values, cycling.
type fixedSource struct {
	vals []int
	i    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v % n
}

func TestPercent(t *testing.T) {
	if Percent(&fixedSource{vals: []int{0}}, 0) {
		t.Error("Expected 0% to never pass")
	}
	if Percent(&fixedSource{vals: []int{0}}, -10) {
		t.Error("Expected negative chance to never pass")
	}
	if !Percent(&fixedSource{vals: []int{99}}, 100) {
		t.Error("Expected 100% to always pass")
	}
	if !Percent(&fixedSource{vals: []int{99}}, 150) {
		t.Error("Expected chance above 100 to always pass")
	}
	if !Percent(&fixedSource{vals: []int{29}}, 30) {
		t.Error("Expected roll 29 to pass a 30% check")
	}
	if Percent(&fixedSource{vals: []int{30}}, 30) {
		t.Error("Expected roll 30 to fail a 30% check")
	}
}

func TestIntBetween(t *testing.T) {
	src := New(1)
	for i := 0; i < 1000; i++ {
		v := IntBetween(src, 1, 20)
		if v < 1 || v > 20 {
			t.Fatalf("IntBetween(1, 20) = %d, out of range", v)
		}
	}

	if v := IntBetween(src, 5, 5); v != 5 {
		t.Errorf("Expected degenerate range to return 5, got %d", v)
	}
	if v := IntBetween(src, 8, 3); v != 8 {
		t.Errorf("Expected inverted range to return lo, got %d", v)
	}
}

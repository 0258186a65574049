package testutil

import "testing"

func TestRandomSamplesReproducible(t *testing.T) {
	x1, y1 := RandomSamples(42, 64, 10)
	x2, y2 := RandomSamples(42, 64, 10)
	if len(x1) != 64 || len(y1) != 64 {
		t.Fatalf("len = %d/%d, want 64", len(x1), len(y1))
	}
	for i := range x1 {
		if x1[i] != x2[i] || y1[i] != y2[i] {
			t.Fatalf("samples not deterministic at index %d", i)
		}
		if x1[i] < -10 || x1[i] >= 10 {
			t.Fatalf("x[%d] = %v out of range", i, x1[i])
		}
	}
}

func TestShuffledKeepsPairs(t *testing.T) {
	x := Ramp(32)
	y := make([]float64, len(x))
	for i := range y {
		y[i] = 2 * x[i]
	}
	xs, ys := Shuffled(7, x, y)
	seen := make(map[float64]bool, len(xs))
	for i := range xs {
		if ys[i] != 2*xs[i] {
			t.Fatalf("pair %d broken: (%v, %v)", i, xs[i], ys[i])
		}
		seen[xs[i]] = true
	}
	if len(seen) != len(x) {
		t.Fatalf("got %d distinct x, want %d", len(seen), len(x))
	}
}

func TestConst(t *testing.T) {
	c := Const(2.5, 3)
	if len(c) != 3 || c[0] != 2.5 || c[2] != 2.5 {
		t.Fatalf("Const = %v", c)
	}
}

func TestTiedSamples(t *testing.T) {
	x, y := TiedSamples(5, 100, 3)
	if len(x) != 100 || len(y) != 100 {
		t.Fatalf("len = %d/%d, want 100", len(x), len(y))
	}
	for i, v := range x {
		if v != 0.1 && v != 0.2 && v != 0.3 {
			t.Fatalf("x[%d] = %v, want one of 0.1, 0.2, 0.3", i, v)
		}
	}
}

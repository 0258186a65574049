package testutil

import "math/rand"

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Const returns a slice of length n filled with value.
func Const(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// RandomSamples returns n (x, y) pairs with x uniform in [-scale, scale)
// and y = x plus uniform noise in [-1, 1). The same seed always yields the
// same samples.
func RandomSamples(seed int64, n int, scale float64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = (rng.Float64()*2 - 1) * scale
		y[i] = x[i] + rng.Float64()*2 - 1
	}
	return x, y
}

// Shuffled returns copies of x and y permuted by the same seeded
// permutation.
func Shuffled(seed int64, x, y []float64) (xs, ys []float64) {
	perm := rand.New(rand.NewSource(seed)).Perm(len(x))
	xs = make([]float64, len(x))
	ys = make([]float64, len(y))
	for i, j := range perm {
		xs[i] = x[j]
		ys[i] = y[j]
	}
	return xs, ys
}

// TiedSamples returns n (x, y) pairs whose x values are drawn from the
// decimals 0.1, 0.2, ..., levels/10, so most x values repeat. y is uniform
// in [-1, 1).
func TiedSamples(seed int64, n, levels int) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = float64(1+rng.Intn(levels)) / 10
		y[i] = rng.Float64()*2 - 1
	}
	return x, y
}

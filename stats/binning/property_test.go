package binning

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/cwbudde/algo-binning/internal/testutil"
)

func binProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// samplesAndBins maps generated numbers onto a valid BinN call.
func samplesAndBins(seed int64, size, bins int) (x, y []float64, n int) {
	x, y = testutil.RandomSamples(seed, size, 100)
	return x, y, 1 + bins%size
}

func TestBinN_Properties(t *testing.T) {
	properties := binProperties(t)

	properties.Property("every output has one entry per bin", prop.ForAll(
		func(seed int64, size, bins int) bool {
			x, y, n := samplesAndBins(seed, size, bins)
			res, err := BinN(x, y, n)
			if err != nil {
				return false
			}
			return len(res.X) == n && len(res.Y) == n && len(res.S) == n &&
				len(res.Sm) == n && len(res.Count) == n
		},
		gen.Int64(), gen.IntRange(1, 300), gen.IntRange(0, 300),
	))

	properties.Property("counts sum to N and differ by at most one", prop.ForAll(
		func(seed int64, size, bins int) bool {
			x, y, n := samplesAndBins(seed, size, bins)
			res, err := BinN(x, y, n)
			if err != nil {
				return false
			}
			lo, hi := res.Count[0], res.Count[0]
			for _, c := range res.Count {
				lo, hi = min(lo, c), max(hi, c)
			}
			return res.Total() == size && hi-lo <= 1
		},
		gen.Int64(), gen.IntRange(1, 300), gen.IntRange(0, 300),
	))

	properties.Property("bin positions are non-decreasing", prop.ForAll(
		func(seed int64, size, bins int, median bool) bool {
			x, y, n := samplesAndBins(seed, size, bins)
			c := CenterMean
			if median {
				c = CenterMedian
			}
			res, err := BinN(x, y, n, WithCenter(c))
			if err != nil {
				return false
			}
			for i := 1; i < n; i++ {
				if res.X[i] < res.X[i-1] || res.XMin[i] < res.XMax[i-1] {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 300), gen.IntRange(0, 300), gen.Bool(),
	))

	properties.Property("bin positions are non-decreasing with tied x", prop.ForAll(
		func(seed int64, size, bins, levels int, median bool) bool {
			x, y := testutil.TiedSamples(seed, size, levels)
			n := 1 + bins%size
			c := CenterMean
			if median {
				c = CenterMedian
			}
			res, err := BinN(x, y, n, WithCenter(c))
			if err != nil {
				return false
			}
			for i := range res.X {
				if res.X[i] < res.XMin[i] || res.X[i] > res.XMax[i] {
					return false
				}
				if i > 0 && res.X[i] < res.X[i-1] {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 300), gen.IntRange(0, 300), gen.IntRange(1, 5), gen.Bool(),
	))

	properties.Property("standard error is zero with one member per bin", prop.ForAll(
		func(seed int64, size int) bool {
			x, y := testutil.RandomSamples(seed, size, 100)
			res, err := BinN(x, y, size)
			if err != nil {
				return false
			}
			for _, sm := range res.Sm {
				if sm != 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 300),
	))

	properties.Property("standard error equals S over sqrt(Count)", prop.ForAll(
		func(seed int64, size, bins int) bool {
			x, y, n := samplesAndBins(seed, size, bins)
			res, err := BinN(x, y, n)
			if err != nil {
				return false
			}
			for i := range res.Sm {
				want := res.S[i] / math.Sqrt(float64(res.Count[i]))
				if math.Abs(res.Sm[i]-want) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 300), gen.IntRange(0, 300),
	))

	properties.TestingRun(t)
}

func TestBinBySize_Properties(t *testing.T) {
	properties := binProperties(t)

	properties.Property("all samples land in len/size bins", prop.ForAll(
		func(seed int64, size, per int) bool {
			x, y := testutil.RandomSamples(seed, size, 100)
			per = 1 + per%size
			res, err := BinBySize(x, y, per)
			if err != nil {
				return false
			}
			if res.Len() != size/per || res.Total() != size {
				return false
			}
			for i, c := range res.Count {
				if i < res.Len()-1 && c != per {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 300), gen.IntRange(0, 300),
	))

	properties.TestingRun(t)
}

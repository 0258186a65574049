package binning

import (
	"cmp"
	"math"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
)

// BinN sorts the samples by x and splits them into n bins of equal
// occupancy. len(x) must equal len(y), 1 <= n <= len(x) and all values must
// be finite; otherwise the returned error matches ErrInvalidInput.
//
// Outputs are finite as long as, within every bin, differences between
// values do not exceed math.MaxFloat64; only values of both signs close to
// ±math.MaxFloat64 in one bin can overflow S and Sm.
func BinN(x, y []float64, n int, opts ...Option) (Result, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err := validatePairs(x, y); err != nil {
		return Result{}, err
	}
	if err := validateCount("bin count", n, len(x)); err != nil {
		return Result{}, err
	}

	return binSorted(x, y, EqualOccupancy(len(x), n), cfg)
}

// BinBySize sorts the samples by x and splits them into runs of size
// samples. The len(x) mod size samples left over are merged into the last
// bin, so there are len(x)/size bins.
func BinBySize(x, y []float64, size int, opts ...Option) (Result, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err := validatePairs(x, y); err != nil {
		return Result{}, err
	}
	if err := validateCount("bin size", size, len(x)); err != nil {
		return Result{}, err
	}

	nb := len(x) / size
	sizes := make([]int, nb)
	for i := range sizes {
		sizes[i] = size
	}
	sizes[nb-1] += len(x) % size

	return binSorted(x, y, sizes, cfg)
}

// EqualOccupancy returns the member count of each of n bins over total
// samples. Counts differ by at most one and the first total mod n bins are
// the larger ones. It panics if n < 1.
func EqualOccupancy(total, n int) []int {
	if n < 1 {
		panic("binning: bin count must be positive")
	}
	sizes := make([]int, n)
	base, extra := total/n, total%n
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

// SortByX returns copies of x and y reordered by ascending x. Samples with
// equal x keep their input order.
func SortByX(x, y []float64) (xs, ys []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(x[a], x[b])
	})

	xs = make([]float64, len(x))
	ys = make([]float64, len(y))
	for i, j := range idx {
		xs[i] = x[j]
		ys[i] = y[j]
	}
	return xs, ys
}

func binSorted(x, y []float64, sizes []int, cfg config) (Result, error) {
	xs, ys := SortByX(x, y)

	maxSize := slices.Max(sizes)
	scratch := make([]float64, maxSize)

	res := newResult(len(sizes))
	start := 0
	for i, size := range sizes {
		end := start + size
		b, err := summarize(xs[start:end], ys[start:end], cfg, scratch)
		if err != nil {
			return Result{}, err
		}
		res.set(i, b)
		start = end
	}
	return res, nil
}

// BinX assigns each sample to the bin around the nearest of the given
// centers and summarizes y per bin. Bin edges lie halfway between adjacent
// centers; the outer edges extend half the neighboring spacing beyond the
// first and last center. Samples outside the outer edges are ignored, as
// are samples whose x or y is NaN.
//
// X of the result holds the centers and XMin/XMax the bin edges. Empty bins
// report NaN for Y, S and Sm.
func BinX(x, y, centers []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, errors.Wrapf(ErrInvalidInput, "len(x)=%d differs from len(y)=%d", len(x), len(y))
	}
	if err := validateCenters(centers); err != nil {
		return Result{}, err
	}

	edges := Edges(centers)
	members := make([][]float64, len(centers))
	for i := range x {
		xi, yi := x[i], y[i]
		if math.IsNaN(xi) || math.IsNaN(yi) {
			continue
		}
		if math.IsInf(xi, 0) || math.IsInf(yi, 0) {
			return Result{}, errors.Wrapf(ErrInvalidInput, "sample %d is infinite", i)
		}
		b := sort.Search(len(edges), func(j int) bool { return edges[j] > xi }) - 1
		if b < 0 || b >= len(centers) {
			continue
		}
		members[b] = append(members[b], yi)
	}

	maxSize := 0
	for _, m := range members {
		maxSize = max(maxSize, len(m))
	}
	scratch := make([]float64, maxSize)

	res := newResult(len(centers))
	for i, ys := range members {
		b := Bin{
			X:     centers[i],
			Count: len(ys),
			XMin:  edges[i],
			XMax:  edges[i+1],
			Y:     math.NaN(),
			S:     math.NaN(),
			Sm:    math.NaN(),
		}
		if len(ys) > 0 {
			b.Y = runningMean(ys)
			b.S, b.Sm = spread(ys, b.Y, scratch)
		}
		res.set(i, b)
	}
	return res, nil
}

// Edges returns the len(centers)+1 bin edges around strictly increasing
// centers.
func Edges(centers []float64) []float64 {
	n := len(centers)
	edges := make([]float64, n+1)
	if n == 0 {
		return edges[:0]
	}
	if n == 1 {
		edges[0], edges[1] = centers[0], centers[0]
		return edges
	}
	edges[0] = centers[0] - (centers[1]-centers[0])/2
	for i := 1; i < n; i++ {
		edges[i] = centers[i-1] + (centers[i]-centers[i-1])/2
	}
	edges[n] = centers[n-1] + (centers[n-1]-centers[n-2])/2
	return edges
}

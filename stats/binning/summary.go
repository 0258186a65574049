package binning

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cwbudde/algo-vecmath"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Bin is the summary of one bin.
type Bin struct {
	X     float64 // center position (mean or median of member x)
	Y     float64 // mean of member y
	S     float64 // population standard deviation of member y
	Sm    float64 // standard error of the mean of member y
	Count int
	XMin  float64
	XMax  float64
}

// Result holds per-bin summaries in column form. All slices have the same
// length, the number of bins.
type Result struct {
	X     []float64
	Y     []float64
	S     []float64
	Sm    []float64
	Count []int
	XMin  []float64
	XMax  []float64
}

func newResult(n int) Result {
	return Result{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		S:     make([]float64, n),
		Sm:    make([]float64, n),
		Count: make([]int, n),
		XMin:  make([]float64, n),
		XMax:  make([]float64, n),
	}
}

// Len returns the number of bins.
func (r Result) Len() int { return len(r.X) }

// Total returns the number of samples that were assigned to a bin.
func (r Result) Total() int {
	var total int
	for _, c := range r.Count {
		total += c
	}
	return total
}

// Bin returns the summary of bin i.
func (r Result) Bin(i int) Bin {
	return Bin{
		X:     r.X[i],
		Y:     r.Y[i],
		S:     r.S[i],
		Sm:    r.Sm[i],
		Count: r.Count[i],
		XMin:  r.XMin[i],
		XMax:  r.XMax[i],
	}
}

// Bins returns the summaries in row form.
func (r Result) Bins() []Bin {
	out := make([]Bin, r.Len())
	for i := range out {
		out[i] = r.Bin(i)
	}
	return out
}

func (r Result) set(i int, b Bin) {
	r.X[i] = b.X
	r.Y[i] = b.Y
	r.S[i] = b.S
	r.Sm[i] = b.Sm
	r.Count[i] = b.Count
	r.XMin[i] = b.XMin
	r.XMax[i] = b.XMax
}

// spread computes the population standard deviation of v around mean and
// the standard error of the mean. Deviations are scaled by their largest
// magnitude before squaring so that large finite inputs do not overflow.
// scratch must hold at least len(v) elements.
func spread(v []float64, mean float64, scratch []float64) (std, sem float64) {
	n := len(v)
	if n < 2 {
		return 0, 0
	}

	dev := scratch[:n]
	var scale float64
	for i, f := range v {
		dev[i] = f - mean
		scale = max(scale, math.Abs(dev[i]))
	}
	if scale == 0 {
		return 0, 0
	}
	for i := range dev {
		dev[i] /= scale
	}
	vecmath.MulBlockInPlace(dev, dev)

	std = scale * math.Sqrt(kahanSum(dev)/float64(n))
	return std, stat.StdErr(std, float64(n))
}

// kahanSum sums v with compensated summation.
func kahanSum(v []float64) float64 {
	var sum, c float64
	for _, x := range v {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// runningMean returns the mean of v updated sample by sample, which stays
// finite for any finite input of one sign. The result is clamped to the
// range of v; rounding may otherwise push it past the extremes.
func runningMean(v []float64) float64 {
	var mean float64
	lo, hi := v[0], v[0]
	for i, f := range v {
		mean += (f - mean) / float64(i+1)
		lo, hi = min(lo, f), max(hi, f)
	}
	return clamp(mean, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// center returns the bin position of xs, which must be sorted, according
// to c. The position never leaves [xs[0], xs[len(xs)-1]], which keeps the
// positions of adjacent bins ordered even when x values tie across a bin
// boundary.
func center(xs []float64, c Center) (float64, error) {
	lo, hi := xs[0], xs[len(xs)-1]
	if c == CenterMedian {
		m, err := stats.Median(xs)
		if err != nil {
			return 0, errors.Wrap(err, "binning: median")
		}
		return clamp(m, lo, hi), nil
	}
	return runningMean(xs), nil
}

// summarize computes the bin summary of members sorted by x.
func summarize(xs, ys []float64, cfg config, scratch []float64) (Bin, error) {
	cx, err := center(xs, cfg.center)
	if err != nil {
		return Bin{}, err
	}
	mean := runningMean(ys)
	std, sem := spread(ys, mean, scratch)

	return Bin{
		X:     cx,
		Y:     mean,
		S:     std,
		Sm:    sem,
		Count: len(xs),
		XMin:  xs[0],
		XMax:  xs[len(xs)-1],
	}, nil
}

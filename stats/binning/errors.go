package binning

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidInput is returned (wrapped) for every rejected input: length
// mismatches, out-of-range bin counts and non-finite samples.
var ErrInvalidInput = errors.New("binning: invalid input")

func validatePairs(x, y []float64) error {
	if len(x) != len(y) {
		return errors.Wrapf(ErrInvalidInput, "len(x)=%d differs from len(y)=%d", len(x), len(y))
	}
	if len(x) == 0 {
		return errors.Wrap(ErrInvalidInput, "no samples")
	}
	if i := firstNonFinite(x); i >= 0 {
		return errors.Wrapf(ErrInvalidInput, "x[%d]=%v is not finite", i, x[i])
	}
	if i := firstNonFinite(y); i >= 0 {
		return errors.Wrapf(ErrInvalidInput, "y[%d]=%v is not finite", i, y[i])
	}
	return nil
}

func validateCount(name string, v, total int) error {
	if v < 1 || v > total {
		return errors.Wrapf(ErrInvalidInput, "%s must be in [1,%d]: %d", name, total, v)
	}
	return nil
}

func validateCenters(centers []float64) error {
	if len(centers) < 2 {
		return errors.Wrapf(ErrInvalidInput, "need at least 2 bin centers, got %d", len(centers))
	}
	if i := firstNonFinite(centers); i >= 0 {
		return errors.Wrapf(ErrInvalidInput, "centers[%d]=%v is not finite", i, centers[i])
	}
	for i := 1; i < len(centers); i++ {
		if centers[i] <= centers[i-1] {
			return errors.Wrapf(ErrInvalidInput, "centers must be strictly increasing at index %d", i)
		}
	}
	return nil
}

func firstNonFinite(v []float64) int {
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return i
		}
	}
	return -1
}

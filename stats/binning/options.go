package binning

import "github.com/cockroachdb/errors"

// Center selects the statistic reported as a bin's X position.
type Center int

const (
	// CenterMean reports the arithmetic mean of the member x values.
	CenterMean Center = iota
	// CenterMedian reports the median of the member x values.
	CenterMedian
)

// String returns the lower-case name used on the command line.
func (c Center) String() string {
	switch c {
	case CenterMean:
		return "mean"
	case CenterMedian:
		return "median"
	default:
		return "unknown"
	}
}

// ParseCenter maps "mean" or "median" to a Center.
func ParseCenter(s string) (Center, error) {
	switch s {
	case "mean":
		return CenterMean, nil
	case "median":
		return CenterMedian, nil
	}
	return 0, errors.Wrapf(ErrInvalidInput, "unknown center statistic %q", s)
}

// Option configures binning.
type Option func(*config)

type config struct {
	center Center
}

func defaultConfig() config {
	return config{center: CenterMean}
}

// WithCenter selects how the X position of each bin is computed.
func WithCenter(c Center) Option {
	return func(cfg *config) {
		cfg.center = c
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.center != CenterMean && cfg.center != CenterMedian {
		return cfg, errors.Wrapf(ErrInvalidInput, "unknown center statistic %d", int(cfg.center))
	}
	return cfg, nil
}

// Package binplot renders binning results as bin means with standard-error
// bars.
package binplot

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-binning/stats/binning"
)

// ErrEmptyResult is returned when a result has no bin with members.
var ErrEmptyResult = errors.New("binplot: no populated bins to plot")

// Option configures plot rendering.
type Option func(*config)

type config struct {
	title      string
	xLabel     string
	yLabel     string
	errScale   float64
	samplesX   []float64
	samplesY   []float64
	withLegend bool
}

func defaultConfig() config {
	return config{
		xLabel:   "x",
		yLabel:   "y",
		errScale: 1,
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) Option {
	return func(c *config) {
		c.xLabel = x
		c.yLabel = y
	}
}

// WithErrorScale draws error bars at Y ± k·Sm. Non-positive k is ignored.
func WithErrorScale(k float64) Option {
	return func(c *config) {
		if k > 0 {
			c.errScale = k
		}
	}
}

// WithSamples overlays the raw samples behind the bins.
func WithSamples(x, y []float64) Option {
	return func(c *config) {
		c.samplesX = x
		c.samplesY = y
	}
}

// WithLegend adds a legend naming the samples and bins.
func WithLegend() Option {
	return func(c *config) {
		c.withLegend = true
	}
}

// errorPoints pairs bin positions with their error bars for
// plotter.NewYErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// points extracts the populated bins of res. Bins without members (BinX)
// carry NaN and are skipped.
func points(res binning.Result, k float64) errorPoints {
	var pts errorPoints
	for i := range res.X {
		if res.Count[i] == 0 || math.IsNaN(res.Y[i]) {
			continue
		}
		e := k * res.Sm[i]
		pts.XYs = append(pts.XYs, plotter.XY{X: res.X[i], Y: res.Y[i]})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{e, e})
	}
	return pts
}

// New builds a plot of res.
func New(res binning.Result, opts ...Option) (*plot.Plot, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pts := points(res, cfg.errScale)
	if len(pts.XYs) == 0 {
		return nil, ErrEmptyResult
	}
	if len(cfg.samplesX) != len(cfg.samplesY) {
		return nil, errors.Newf("binplot: %d sample x values but %d y values", len(cfg.samplesX), len(cfg.samplesY))
	}

	p, err := plot.New()
	if err != nil {
		return nil, errors.Wrap(err, "binplot: new plot")
	}
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Add(plotter.NewGrid())

	if len(cfg.samplesX) > 0 {
		raw := make(plotter.XYs, 0, len(cfg.samplesX))
		for i := range cfg.samplesX {
			if math.IsNaN(cfg.samplesX[i]) || math.IsNaN(cfg.samplesY[i]) {
				continue
			}
			raw = append(raw, plotter.XY{X: cfg.samplesX[i], Y: cfg.samplesY[i]})
		}
		samples, err := plotter.NewScatter(raw)
		if err != nil {
			return nil, errors.Wrap(err, "binplot: samples")
		}
		samples.GlyphStyle.Radius = vg.Points(1)
		p.Add(samples)
		if cfg.withLegend {
			p.Legend.Add("samples", samples)
		}
	}

	means, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, errors.Wrap(err, "binplot: bin means")
	}
	means.GlyphStyle.Radius = vg.Points(3)

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, errors.Wrap(err, "binplot: error bars")
	}

	line, err := plotter.NewLine(pts.XYs)
	if err != nil {
		return nil, errors.Wrap(err, "binplot: bin line")
	}
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(line, bars, means)
	if cfg.withLegend {
		p.Legend.Add("bins", means, line)
	}
	return p, nil
}

// Write renders res to w in the given format ("png", "svg", "pdf", "eps",
// "jpg", "tif").
func Write(w io.Writer, res binning.Result, format string, width, height vg.Length, opts ...Option) error {
	p, err := New(res, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return errors.Wrapf(err, "binplot: format %q", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "binplot: write")
	}
	return nil
}

// Save renders res to file; the extension selects the format.
func Save(file string, res binning.Result, width, height vg.Length, opts ...Option) error {
	p, err := New(res, opts...)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, file); err != nil {
		return errors.Wrapf(err, "binplot: save %s", file)
	}
	return nil
}

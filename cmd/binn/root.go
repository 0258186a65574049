package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-binning/plot/binplot"
	"github.com/cwbudde/algo-binning/stats/binning"
)

type options struct {
	bins     int
	size     int
	sizeSet  bool
	xcol     int
	ycol     int
	header   bool
	center   string
	format   string
	plotFile string
	errScale float64
	verbose  bool
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "binn [flags] [file.csv]",
		Short: "Bin (x, y) samples into equal-occupancy bins",
		Long: "binn sorts CSV samples by x, splits them into bins and prints the\n" +
			"mean x, mean y, standard deviation and standard error of every bin.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.sizeSet = cmd.Flags().Changed("size")
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()
				in, name = f, args[0]
			}
			return run(log, in, name, cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.bins, "bins", "n", 10, "number of equal-occupancy bins")
	flags.IntVar(&opts.size, "size", 0, "samples per bin (replaces --bins)")
	flags.IntVar(&opts.xcol, "xcol", 0, "0-based column index of x")
	flags.IntVar(&opts.ycol, "ycol", 1, "0-based column index of y")
	flags.BoolVar(&opts.header, "header", false, "skip the first row")
	flags.StringVar(&opts.center, "center", binning.CenterMean.String(), "bin position statistic: mean or median")
	flags.StringVar(&opts.format, "format", "table", "output format: table or csv")
	flags.StringVar(&opts.plotFile, "plot", "", "also write a plot; the extension selects the format")
	flags.Float64Var(&opts.errScale, "err-scale", 1, "error bar half-height in standard errors")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")
	cmd.MarkFlagsMutuallyExclusive("bins", "size")

	return cmd
}

func run(log *logrus.Logger, in io.Reader, name string, out io.Writer, opts options) error {
	center, err := binning.ParseCenter(opts.center)
	if err != nil {
		return err
	}
	write, ok := writers[opts.format]
	if !ok {
		return errors.Newf("unknown output format %q", opts.format)
	}

	x, y, err := readColumns(in, opts.xcol, opts.ycol, opts.header)
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	log.WithFields(logrus.Fields{"input": name, "samples": len(x)}).Debug("read samples")

	var res binning.Result
	if opts.sizeSet {
		res, err = binning.BinBySize(x, y, opts.size, binning.WithCenter(center))
	} else {
		res, err = binning.BinN(x, y, opts.bins, binning.WithCenter(center))
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"bins": res.Len(), "center": center}).Debug("binned samples")

	if err := write(out, res); err != nil {
		return errors.Wrap(err, "write result")
	}

	if opts.plotFile == "" {
		return nil
	}
	title := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	err = binplot.Save(opts.plotFile, res, 6*vg.Inch, 4*vg.Inch,
		binplot.WithTitle(title),
		binplot.WithSamples(x, y),
		binplot.WithErrorScale(opts.errScale),
		binplot.WithLegend(),
	)
	if err != nil {
		return err
	}
	log.WithField("file", opts.plotFile).Debug("wrote plot")
	return nil
}

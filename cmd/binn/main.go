// Command binn bins two numeric CSV columns along the first and prints
// per-bin means with their spread.
//
// Usage:
//
//	binn [flags] [file.csv]
//
// Without a file argument the samples are read from stdin.
//
// Examples:
//
//	binn -n 10 data.csv
//	binn --size 50 --xcol 2 --ycol 3 --header data.csv
//	binn -n 20 --center median --format csv --plot bins.svg data.csv
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

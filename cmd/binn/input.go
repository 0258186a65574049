package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// readColumns parses columns xcol and ycol of every CSV record as floats.
// Blank lines are skipped by encoding/csv; lines starting with '#' are
// comments.
func readColumns(r io.Reader, xcol, ycol int, header bool) (x, y []float64, err error) {
	if xcol < 0 || ycol < 0 {
		return nil, nil, errors.Newf("column indices must be >= 0: x=%d y=%d", xcol, ycol)
	}

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if header && row == 1 {
			continue
		}
		if len(rec) <= max(xcol, ycol) {
			return nil, nil, errors.Newf("row %d: %d fields, need column %d", row, len(rec), max(xcol, ycol))
		}
		xv, err := parseField(rec[xcol])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "row %d column %d", row, xcol)
		}
		yv, err := parseField(rec[ycol])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "row %d column %d", row, ycol)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, nil
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

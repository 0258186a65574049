package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/cwbudde/algo-binning/stats/binning"
)

var columns = []string{"bin", "count", "x_min", "x_max", "x", "y", "s", "sm"}

var writers = map[string]func(io.Writer, binning.Result) error{
	"table": writeTable,
	"csv":   writeCSV,
}

func rows(res binning.Result) [][]string {
	out := make([][]string, 0, res.Len())
	for i, b := range res.Bins() {
		out = append(out, []string{
			strconv.Itoa(i),
			strconv.Itoa(b.Count),
			formatFloat(b.XMin),
			formatFloat(b.XMax),
			formatFloat(b.X),
			formatFloat(b.Y),
			formatFloat(b.S),
			formatFloat(b.Sm),
		})
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}

func writeTable(w io.Writer, res binning.Result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(columns)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows(res))
	table.Render()
	return nil
}

func writeCSV(w io.Writer, res binning.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	if err := cw.WriteAll(rows(res)); err != nil {
		return err
	}
	return cw.Error()
}

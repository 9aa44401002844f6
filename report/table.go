// Package report renders analysis results for people: a console table per
// run, a YAML summary document, and per-value size histograms.
//
// Nothing here feeds back into labeling; every function reads finished
// results only.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/voxlab/stats"
)

// SummaryTable builds the statistics table for one run.
// Values without regions show dashes instead of extrema.
func SummaryTable(title string, s stats.Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Value", "Regions", "Voxels", "Min", "Max", "Mean", "Median", "Small (≤10)", "Medium (11-100)", "Large (>100)"})

	for _, vs := range s.Values {
		if vs.Count == 0 {
			t.AppendRow(table.Row{vs.Value, 0, 0, "-", "-", "-", "-", 0, 0, 0})
			continue
		}
		t.AppendRow(table.Row{
			vs.Value,
			humanize.Comma(int64(vs.Count)),
			humanize.Comma(int64(vs.TotalVoxels)),
			vs.Min,
			vs.Max,
			strconv.FormatFloat(vs.Mean, 'f', 1, 64),
			strconv.FormatFloat(vs.Median, 'f', 1, 64),
			vs.Buckets.Small,
			vs.Buckets.Medium,
			vs.Buckets.Large,
		})
	}
	if s.Unlisted > 0 {
		t.AppendRow(table.Row{"other", humanize.Comma(int64(s.Unlisted)), "", "", "", "", "", "", "", ""})
	}

	mean := "-"
	if s.Count > 0 {
		mean = strconv.FormatFloat(s.Mean, 'f', 1, 64)
	}
	t.AppendFooter(table.Row{"Total", humanize.Comma(int64(s.Count)), humanize.Comma(int64(s.TotalVoxels)), "", "", mean})

	cols := make([]table.ColumnConfig, 0, 9)
	for n := 2; n <= 10; n++ {
		cols = append(cols, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(cols)

	return t.Render()
}

// WriteTable writes SummaryTable followed by a newline.
func WriteTable(w io.Writer, title string, s stats.Summary) error {
	_, err := fmt.Fprintln(w, SummaryTable(title, s))
	return err
}

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/stats"
)

// HistogramBins is the bin count of every size histogram.
const HistogramBins = 20

// HistogramFile names the PNG for value, e.g. "sizes_200_6.png".
func HistogramFile(value int, suffix string) string {
	if suffix == "" {
		return fmt.Sprintf("sizes_%d.png", value)
	}
	return fmt.Sprintf("sizes_%d_%s.png", value, suffix)
}

// WriteHistograms saves one region-size histogram per target value into dir
// and returns the written paths in target order. Values with no regions are
// skipped.
func WriteHistograms(dir, suffix string, regions []label.Region, targets label.TargetSet) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create directory: %w", err)
	}

	var paths []string
	for _, value := range targets.Values() {
		sizes := stats.Sizes(regions, value)
		if len(sizes) == 0 {
			continue
		}
		p, err := sizeHistogram(value, suffix, sizes)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, HistogramFile(value, suffix))
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return paths, fmt.Errorf("report: save %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func sizeHistogram(value int, suffix string, sizes []int) (*plot.Plot, error) {
	vals := make(plotter.Values, len(sizes))
	for i, s := range sizes {
		vals[i] = float64(s)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Region sizes, value %d", value)
	if suffix != "" {
		p.Title.Text += " (" + suffix + ")"
	}
	p.X.Label.Text = "voxels"
	p.Y.Label.Text = "regions"

	h, err := plotter.NewHist(vals, HistogramBins)
	if err != nil {
		return nil, fmt.Errorf("report: histogram for %d: %w", value, err)
	}
	p.Add(h)

	return p, nil
}

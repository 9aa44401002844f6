// Package stats aggregates region sizes per target intensity.
//
// Summarize never fails: values without regions report zero counts, and
// means/medians are only computed over non-empty samples.
package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/voxlab/label"
)

// Size bucket upper bounds (inclusive).
const (
	SmallMax  = 10
	MediumMax = 100
)

// Buckets counts regions by size: Small ≤ 10, Medium 11–100, Large > 100.
type Buckets struct {
	Small  int `yaml:"small"`
	Medium int `yaml:"medium"`
	Large  int `yaml:"large"`
}

// Add files one region size into its bucket.
func (b *Buckets) Add(size int) {
	switch {
	case size <= SmallMax:
		b.Small++
	case size <= MediumMax:
		b.Medium++
	default:
		b.Large++
	}
}

// ValueSummary describes the regions of one intensity.
// Min, Max, Mean and Median are zero when Count is zero.
type ValueSummary struct {
	Value       int     `yaml:"value"`
	Count       int     `yaml:"count"`
	TotalVoxels int     `yaml:"totalVoxels"`
	Min         int     `yaml:"min"`
	Max         int     `yaml:"max"`
	Mean        float64 `yaml:"mean"`
	Median      float64 `yaml:"median"`
	Buckets     Buckets `yaml:"buckets"`
}

// Summary is the read-only aggregate of a labeling run.
type Summary struct {
	// Values holds one entry per target, ascending by value.
	Values []ValueSummary `yaml:"values"`
	// Unlisted counts regions whose value is not a target.
	Unlisted int `yaml:"unlisted,omitempty"`

	Count       int     `yaml:"count"`
	TotalVoxels int     `yaml:"totalVoxels"`
	Mean        float64 `yaml:"mean"`
}

// ByValue returns the summary for value, if value is a target.
func (s Summary) ByValue(value int) (ValueSummary, bool) {
	for _, vs := range s.Values {
		if vs.Value == value {
			return vs, true
		}
	}

	return ValueSummary{}, false
}

// Summarize computes per-target and overall statistics. Overall totals
// cover every region passed in, including unlisted ones.
// Complexity: O(R log R) for R regions.
func Summarize(regions []label.Region, targets label.TargetSet) Summary {
	byValue := make(map[int][]int, targets.Len())
	s := Summary{Values: make([]ValueSummary, 0, targets.Len())}

	for _, r := range regions {
		s.Count++
		s.TotalVoxels += r.Size()
		if !targets.Contains(r.Value) {
			s.Unlisted++
			continue
		}
		byValue[r.Value] = append(byValue[r.Value], r.Size())
	}
	for _, v := range targets.Values() {
		s.Values = append(s.Values, summarizeValue(v, byValue[v]))
	}
	if s.Count > 0 {
		s.Mean = float64(s.TotalVoxels) / float64(s.Count)
	}

	return s
}

func summarizeValue(value int, sizes []int) ValueSummary {
	vs := ValueSummary{Value: value, Count: len(sizes)}
	if len(sizes) == 0 {
		return vs
	}
	slices.Sort(sizes)
	xs := make([]float64, len(sizes))
	for i, n := range sizes {
		xs[i] = float64(n)
		vs.TotalVoxels += n
		vs.Buckets.Add(n)
	}
	vs.Min, vs.Max = sizes[0], sizes[len(sizes)-1]
	vs.Mean = stat.Mean(xs, nil)
	vs.Median = median(xs)

	return vs
}

// median of sorted xs; even lengths average the two middle values.
func median(xs []float64) float64 {
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return (xs[n/2-1] + xs[n/2]) / 2
}

// Sizes returns the sorted sizes of the regions holding value.
func Sizes(regions []label.Region, value int) []int {
	var out []int
	for _, r := range regions {
		if r.Value == value {
			out = append(out, r.Size())
		}
	}
	slices.Sort(out)

	return out
}

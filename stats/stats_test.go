package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/neighborhood"
	"github.com/katalvlaran/voxlab/stats"
	"github.com/katalvlaran/voxlab/volume"
)

func region(value, size int) label.Region {
	r := label.Region{Value: value, Voxels: make([]label.Voxel, size)}
	for i := range r.Voxels {
		r.Voxels[i] = label.Voxel{Z: i}
	}
	return r
}

// TestSummarize_Empty: no regions gives zero counts for every target.
func TestSummarize_Empty(t *testing.T) {
	s := stats.Summarize(nil, label.DefaultTargets())

	require.Len(t, s.Values, 3)
	for i, want := range []int{140, 200, 255} {
		assert.Equal(t, stats.ValueSummary{Value: want}, s.Values[i])
	}
	assert.Zero(t, s.Count)
	assert.Zero(t, s.TotalVoxels)
	assert.Zero(t, s.Mean)
}

// TestSummarize_PerValue checks extrema, mean, median and buckets.
func TestSummarize_PerValue(t *testing.T) {
	regions := []label.Region{
		region(140, 2), region(200, 150), region(140, 12),
		region(140, 4), region(140, 100), region(255, 11),
	}
	s := stats.Summarize(regions, label.DefaultTargets())

	v140, ok := s.ByValue(140)
	require.True(t, ok)
	assert.Equal(t, 4, v140.Count)
	assert.Equal(t, 118, v140.TotalVoxels)
	assert.Equal(t, 2, v140.Min)
	assert.Equal(t, 100, v140.Max)
	assert.InDelta(t, 29.5, v140.Mean, 1e-9)
	assert.InDelta(t, 8.0, v140.Median, 1e-9, "even count averages the middle pair")
	assert.Equal(t, stats.Buckets{Small: 2, Medium: 2}, v140.Buckets)

	v200, _ := s.ByValue(200)
	assert.Equal(t, stats.Buckets{Large: 1}, v200.Buckets)
	assert.InDelta(t, 150.0, v200.Median, 1e-9)

	v255, _ := s.ByValue(255)
	assert.Equal(t, stats.Buckets{Medium: 1}, v255.Buckets)

	assert.Equal(t, 6, s.Count)
	assert.Equal(t, 279, s.TotalVoxels)
	assert.InDelta(t, 46.5, s.Mean, 1e-9)

	_, ok = s.ByValue(7)
	assert.False(t, ok)
}

// TestSummarize_Unlisted counts regions outside the target set separately.
func TestSummarize_Unlisted(t *testing.T) {
	targets := label.MustTargetSet(140)
	s := stats.Summarize([]label.Region{region(140, 3), region(200, 5)}, targets)

	require.Len(t, s.Values, 1)
	assert.Equal(t, 1, s.Values[0].Count)
	assert.Equal(t, 1, s.Unlisted)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 8, s.TotalVoxels)
}

// TestSummarize_TwoBlobs: two 5-voxel 200 regions are both small.
func TestSummarize_TwoBlobs(t *testing.T) {
	v, err := volume.FromFunc(11, 3, 3, func(x, y, z int) int {
		if y == 1 && z == 1 && x != 5 {
			return 200
		}
		return 0
	})
	require.NoError(t, err)
	regions, err := label.Label(v, label.DefaultTargets(), neighborhood.FaceAdjacency)
	require.NoError(t, err)

	s := stats.Summarize(regions, label.DefaultTargets())
	v200, _ := s.ByValue(200)
	assert.Equal(t, 2, v200.Count)
	assert.Equal(t, stats.Buckets{Small: 2}, v200.Buckets)
	assert.InDelta(t, 5.0, v200.Median, 1e-9)
	assert.Equal(t, []int{5, 5}, stats.Sizes(regions, 200))
	assert.Empty(t, stats.Sizes(regions, 140))
}

// TestBuckets_Boundaries pins the inclusive bucket limits.
func TestBuckets_Boundaries(t *testing.T) {
	var b stats.Buckets
	for _, n := range []int{2, 10, 11, 100, 101} {
		b.Add(n)
	}
	assert.Equal(t, stats.Buckets{Small: 2, Medium: 2, Large: 1}, b)
}

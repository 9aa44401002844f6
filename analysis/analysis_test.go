package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/voxlab/analysis"
	"github.com/katalvlaran/voxlab/config"
	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/neighborhood"
	"github.com/katalvlaran/voxlab/volume"
)

// diagonalPair is a 2×2×2 volume with two 255s touching at a corner.
func diagonalPair(t *testing.T) *volume.Volume {
	t.Helper()
	v, err := volume.FromNested([][][]int{
		{{255, 0}, {0, 0}},
		{{0, 0}, {0, 255}},
	})
	require.NoError(t, err)
	return v
}

func observed() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

// TestAnalyze_BothTopologies pads once and runs 6 then 26 independently.
func TestAnalyze_BothTopologies(t *testing.T) {
	logger, logs := observed()
	a, err := analysis.New(label.DefaultTargets(), analysis.WithLogger(logger))
	require.NoError(t, err)

	rep, err := a.Analyze(context.Background(), diagonalPair(t), []int{6, 26})
	require.NoError(t, err)

	assert.Equal(t, [3]int{2, 2, 2}, rep.OriginalDims)
	assert.Equal(t, [3]int{4, 4, 4}, rep.PaddedDims)
	require.Len(t, rep.Outcomes, 2)

	six := rep.Outcomes[0].Result
	require.NotNil(t, six)
	assert.Equal(t, neighborhood.FaceAdjacency, six.Topology)
	assert.Empty(t, six.Regions)
	assert.Empty(t, six.Graphs)
	assert.Zero(t, six.Summary.Count)

	full := rep.Outcomes[1].Result
	require.NotNil(t, full)
	require.Len(t, full.Regions, 1)
	assert.Equal(t, 2, full.Regions[0].Size())
	assert.Equal(t, label.Voxel{X: 1, Y: 1, Z: 1}, full.Regions[0].Voxels[0], "coordinates are in padded space")
	require.Len(t, full.Graphs, 1)
	assert.Zero(t, full.Graphs[0].EdgeCount())

	v255, _ := full.Summary.ByValue(255)
	assert.Equal(t, 1, v255.Count)

	assert.Equal(t, 2, logs.FilterMessage("analysis run complete").Len())
	assert.Len(t, rep.Succeeded(), 2)
}

// TestAnalyze_UnsupportedTopologyIsolated: a bad run yields no result and
// does not affect its siblings.
func TestAnalyze_UnsupportedTopologyIsolated(t *testing.T) {
	logger, logs := observed()
	a, err := analysis.New(label.DefaultTargets(), analysis.WithLogger(logger))
	require.NoError(t, err)

	rep, err := a.Analyze(context.Background(), diagonalPair(t), []int{18, 26})
	require.NoError(t, err)
	require.Len(t, rep.Outcomes, 2)

	bad := rep.Outcomes[0]
	assert.Equal(t, 18, bad.Requested)
	assert.Nil(t, bad.Result)
	assert.ErrorIs(t, bad.Err, neighborhood.ErrUnsupportedTopology)

	good := rep.Outcomes[1]
	require.NoError(t, good.Err)
	assert.Len(t, good.Result.Regions, 1)

	assert.Equal(t, 1, logs.FilterMessage("skipping analysis run").Len())
	assert.Len(t, rep.Succeeded(), 1)
}

// TestAnalyze_Cancelled marks every run with the context error.
func TestAnalyze_Cancelled(t *testing.T) {
	a, err := analysis.New(label.DefaultTargets())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := a.Analyze(ctx, diagonalPair(t), []int{6, 26})
	require.NoError(t, err)
	for _, o := range rep.Outcomes {
		assert.ErrorIs(t, o.Err, context.Canceled)
		assert.Nil(t, o.Result)
	}
}

// TestAnalyze_Errors covers failures raised before any run starts.
func TestAnalyze_Errors(t *testing.T) {
	a, err := analysis.New(label.DefaultTargets())
	require.NoError(t, err)

	_, err = a.Analyze(context.Background(), nil, []int{6})
	assert.ErrorIs(t, err, volume.ErrNilVolume)

	_, err = a.Analyze(context.Background(), diagonalPair(t), nil)
	assert.ErrorIs(t, err, analysis.ErrNoTopologies)

	_, err = analysis.New(label.TargetSet{})
	assert.ErrorIs(t, err, label.ErrEmptyTargets)
	_, err = analysis.New(label.DefaultTargets(), analysis.WithBorder(-1))
	assert.ErrorIs(t, err, volume.ErrNegativeBorder)
	_, err = analysis.New(label.DefaultTargets(), analysis.WithMinRegionSize(1))
	assert.ErrorIs(t, err, label.ErrOptionViolation)

	_, err = a.Run(context.Background(), diagonalPair(t), neighborhood.Topology(4))
	assert.ErrorIs(t, err, neighborhood.ErrUnsupportedTopology)
}

// TestFromConfig honours border and minimum size.
func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.Border = 0
	cfg.Analysis.MinRegionSize = 3

	a, err := analysis.FromConfig(cfg, nil)
	require.NoError(t, err)

	v, err := volume.FromNested([][][]int{{{140, 140, 0, 200, 200, 200}}})
	require.NoError(t, err)
	rep, err := a.Analyze(context.Background(), v, []int{6})
	require.NoError(t, err)

	assert.Equal(t, rep.OriginalDims, rep.PaddedDims)
	res := rep.Outcomes[0].Result
	require.NotNil(t, res)
	require.Len(t, res.Regions, 1)
	assert.Equal(t, 200, res.Regions[0].Value)

	cfg.Analysis.Targets = []int{0}
	_, err = analysis.FromConfig(cfg, nil)
	assert.ErrorIs(t, err, label.ErrZeroTarget)
}

// Package analysis sequences the labeling core for a whole scan: pad once,
// then run one independent labeling pass per requested topology, each
// followed by graph construction and statistics.
//
// An unsupported topology aborts only its own run; sibling runs proceed.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/voxlab/config"
	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/neighborhood"
	"github.com/katalvlaran/voxlab/regiongraph"
	"github.com/katalvlaran/voxlab/stats"
	"github.com/katalvlaran/voxlab/volume"
)

// ErrNoTopologies is returned when Analyze is asked to run nothing.
var ErrNoTopologies = errors.New("analysis: no topologies requested")

// Result is the output of one labeling run.
type Result struct {
	Topology neighborhood.Topology
	Regions  []label.Region
	Graphs   []*regiongraph.Graph
	Summary  stats.Summary
	Elapsed  time.Duration
}

// Outcome pairs a requested topology with its result or error.
// Exactly one of Result and Err is non-nil.
type Outcome struct {
	Requested int
	Result    *Result
	Err       error
}

// Report is the output of Analyze.
type Report struct {
	OriginalDims [3]int
	PaddedDims   [3]int
	Border       int
	Outcomes     []Outcome
}

// Succeeded returns the results of the runs that completed.
func (r *Report) Succeeded() []*Result {
	var out []*Result
	for _, o := range r.Outcomes {
		if o.Result != nil {
			out = append(out, o.Result)
		}
	}

	return out
}

// Analyzer holds the parameters shared by every run.
type Analyzer struct {
	targets label.TargetSet
	border  int
	minSize int
	logger  *zap.SugaredLogger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithBorder sets the padding thickness (default 1).
func WithBorder(b int) Option {
	return func(a *Analyzer) { a.border = b }
}

// WithMinRegionSize sets the smallest reported region (default 2).
func WithMinRegionSize(n int) Option {
	return func(a *Analyzer) { a.minSize = n }
}

// New returns an Analyzer for targets. Invalid borders or sizes are
// rejected here, before any volume is touched.
func New(targets label.TargetSet, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		targets: targets,
		border:  1,
		minSize: 2,
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if targets.Len() == 0 {
		return nil, label.ErrEmptyTargets
	}
	if a.border < 0 {
		return nil, fmt.Errorf("%w: %d", volume.ErrNegativeBorder, a.border)
	}
	if a.minSize < 2 {
		return nil, fmt.Errorf("%w: MinSize must be >= 2 (got %d)", label.ErrOptionViolation, a.minSize)
	}

	return a, nil
}

// FromConfig builds an Analyzer from the analysis section of cfg.
func FromConfig(cfg *config.Config, logger *zap.SugaredLogger) (*Analyzer, error) {
	targets, err := cfg.TargetSet()
	if err != nil {
		return nil, err
	}

	return New(targets,
		WithBorder(cfg.Analysis.Border),
		WithMinRegionSize(cfg.Analysis.MinRegionSize),
		WithLogger(logger),
	)
}

// Run labels an already padded volume under topo and derives graphs and
// statistics. The topology is validated before any traversal.
func (a *Analyzer) Run(ctx context.Context, v *volume.Volume, topo neighborhood.Topology) (*Result, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	regions, err := label.Label(v, a.targets, topo, label.WithMinSize(a.minSize))
	if err != nil {
		return nil, err
	}
	a.logger.Debugw("labeling done", "topology", topo.String(), "regions", len(regions))

	res := &Result{
		Topology: topo,
		Regions:  regions,
		Graphs:   regiongraph.BuildAll(regions),
		Summary:  stats.Summarize(regions, a.targets),
	}
	res.Elapsed = time.Since(start)

	a.logger.Infow("analysis run complete",
		"topology", topo.String(),
		"regions", res.Summary.Count,
		"voxels", res.Summary.TotalVoxels,
		"graphs", len(res.Graphs),
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// Analyze pads raw once and performs one run per requested topology, in
// order. Padding errors abort everything; a bad topology aborts only its
// run and is recorded in the matching Outcome. Cancellation stops before
// the next run and marks the remaining outcomes with ctx.Err().
func (a *Analyzer) Analyze(ctx context.Context, raw *volume.Volume, topologies []int) (*Report, error) {
	if len(topologies) == 0 {
		return nil, ErrNoTopologies
	}
	padded, err := volume.Pad(raw, a.border)
	if err != nil {
		return nil, err
	}

	rep := &Report{Border: a.border, Outcomes: make([]Outcome, 0, len(topologies))}
	rep.OriginalDims[0], rep.OriginalDims[1], rep.OriginalDims[2] = raw.Dims()
	rep.PaddedDims[0], rep.PaddedDims[1], rep.PaddedDims[2] = padded.Dims()
	a.logger.Infow("volume padded", "original", rep.OriginalDims, "padded", rep.PaddedDims, "border", a.border)

	for _, n := range topologies {
		out := Outcome{Requested: n}
		topo, err := neighborhood.Parse(n)
		if err == nil {
			out.Result, err = a.Run(ctx, padded, topo)
		}
		if err != nil {
			out.Err = err
			if errors.Is(err, neighborhood.ErrUnsupportedTopology) {
				a.logger.Errorw("skipping analysis run", "topology", n, "error", err)
			} else {
				a.logger.Warnw("analysis run failed", "topology", n, "error", err)
			}
		}
		rep.Outcomes = append(rep.Outcomes, out)
	}

	return rep, nil
}

// Package main is the voxlab command line front end.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/voxlab/analysis"
	"github.com/katalvlaran/voxlab/config"
	"github.com/katalvlaran/voxlab/report"
	"github.com/katalvlaran/voxlab/stats"
	"github.com/katalvlaran/voxlab/volume"
)

const (
	// Flags.
	flagConfig     = "config"
	flagInput      = "input"
	flagDims       = "dims"
	flagDType      = "dtype"
	flagTopology   = "topology"
	flagTargets    = "targets"
	flagBorder     = "border"
	flagMinSize    = "min-size"
	flagHistograms = "histograms"
	flagOut        = "out"
	flagSummary    = "summary"
	flagGraphPlot  = "graph-plot"
	flagGraphPlane = "graph-plane"
	flagDebug      = "debug"

	defaultConfigPath = "voxlab.yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "voxlab",
		Usage: "label same-intensity voxel regions and report their statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Value:   defaultConfigPath,
				Usage:   "YAML configuration file; missing files fall back to defaults",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable development logging at debug level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "label a raw volume under each requested topology",
				UsageText: "voxlab [global options] analyze [--input PATH --dims N,M,K] [other options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagInput,
						Aliases: []string{"i"},
						Usage:   "raw little-endian voxel file (.gz is decompressed)",
					},
					&cli.IntSliceFlag{
						Name:  flagDims,
						Usage: "volume extents n,m,k",
					},
					&cli.StringFlag{
						Name:  flagDType,
						Usage: "voxel encoding: uint8, uint16, int16 or int32",
					},
					&cli.IntSliceFlag{
						Name:    flagTopology,
						Aliases: []string{"t"},
						Usage:   "connectivity runs to perform (6 and/or 26)",
					},
					&cli.IntSliceFlag{
						Name:  flagTargets,
						Usage: "intensity values eligible for labeling",
					},
					&cli.IntFlag{
						Name:  flagBorder,
						Usage: "zero padding thickness",
					},
					&cli.IntFlag{
						Name:  flagMinSize,
						Usage: "smallest reported region (>= 2)",
					},
					&cli.BoolFlag{
						Name:  flagHistograms,
						Usage: "write one size histogram PNG per target value",
					},
					&cli.StringFlag{
						Name:    flagOut,
						Aliases: []string{"o"},
						Usage:   "output directory for histograms and the summary file",
					},
					&cli.StringFlag{
						Name:  flagSummary,
						Usage: "YAML summary file name written under the output directory",
					},
					&cli.BoolFlag{
						Name:  flagGraphPlot,
						Usage: "write one region-graph overview PNG per run",
					},
					&cli.StringFlag{
						Name:  flagGraphPlane,
						Usage: "graph overview projection: oblique, xy, xz or yz",
					},
				},
				Action: analyzeAction,
			},
			{
				Name:      "init",
				Usage:     "write a default configuration file",
				ArgsUsage: "[path]",
				Action:    initAction,
			},
		},
	}
}

func initAction(cCtx *cli.Context) error {
	path := cCtx.Args().First()
	if path == "" {
		path = cCtx.String(flagConfig)
	}
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("%s already exists", path)
	}
	if err := config.CreateDefaultConfigFile(path); err != nil {
		return err
	}
	fmt.Fprintf(cCtx.App.Writer, "wrote %s\n", path)

	return nil
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(cCtx.String(flagConfig))
	if err != nil {
		return nil, err
	}

	if cCtx.IsSet(flagInput) {
		cfg.Input.Path = cCtx.String(flagInput)
	}
	if cCtx.IsSet(flagDims) {
		cfg.Input.Dims = cCtx.IntSlice(flagDims)
	}
	if cCtx.IsSet(flagDType) {
		cfg.Input.DType = cCtx.String(flagDType)
	}
	if cCtx.IsSet(flagTopology) {
		cfg.Analysis.Topologies = cCtx.IntSlice(flagTopology)
	}
	if cCtx.IsSet(flagTargets) {
		cfg.Analysis.Targets = cCtx.IntSlice(flagTargets)
	}
	if cCtx.IsSet(flagBorder) {
		cfg.Analysis.Border = cCtx.Int(flagBorder)
	}
	if cCtx.IsSet(flagMinSize) {
		cfg.Analysis.MinRegionSize = cCtx.Int(flagMinSize)
	}
	if cCtx.IsSet(flagHistograms) {
		cfg.Output.Histograms = cCtx.Bool(flagHistograms)
	}
	if cCtx.IsSet(flagOut) {
		cfg.Output.Dir = cCtx.String(flagOut)
	}
	if cCtx.IsSet(flagSummary) {
		cfg.Output.SummaryFile = cCtx.String(flagSummary)
	}
	if cCtx.IsSet(flagGraphPlot) {
		cfg.Output.GraphPlot = cCtx.Bool(flagGraphPlot)
	}
	if cCtx.IsSet(flagGraphPlane) {
		cfg.Output.GraphPlane = cCtx.String(flagGraphPlane)
	}
	if cCtx.Bool(flagDebug) {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := report.ParsePlane(cfg.Output.GraphPlane); err != nil {
		return nil, err
	}
	if cfg.Input.Path == "" {
		return nil, errors.New("no input volume: set input.path in the config or pass --input")
	}

	return cfg, nil
}

func analyzeAction(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync() //nolint:errcheck

	dt, err := volume.ParseDataType(cfg.Input.DType)
	if err != nil {
		return err
	}
	dims := cfg.Input.Dims
	raw, err := volume.LoadRaw(cfg.Input.Path, dims[0], dims[1], dims[2], dt)
	if err != nil {
		return err
	}
	logger.Infow("volume loaded", "path", cfg.Input.Path, "dims", dims, "dtype", dt.String())

	a, err := analysis.FromConfig(cfg, logger)
	if err != nil {
		return err
	}
	rep, err := a.Analyze(cCtx.Context, raw, cfg.Analysis.Topologies)
	if err != nil {
		return err
	}

	return writeOutputs(cCtx, cfg, rep, logger)
}

func writeOutputs(cCtx *cli.Context, cfg *config.Config, rep *analysis.Report, logger *zap.SugaredLogger) error {
	targets, err := cfg.TargetSet()
	if err != nil {
		return err
	}
	// loadConfig has already accepted the plane name
	plane, _ := report.ParsePlane(cfg.Output.GraphPlane)
	w := cCtx.App.Writer

	for _, o := range rep.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "topology %d: %v\n\n", o.Requested, o.Err)
			continue
		}
		res := o.Result
		if err := report.WriteTable(w, res.Topology.String(), res.Summary); err != nil {
			return err
		}
		fmt.Fprintln(w)
		suffix := strconv.Itoa(res.Topology.Degree())

		if cfg.Output.GraphPlot {
			path, err := report.WriteGraphPlot(cfg.Output.Dir, suffix, res.Graphs, plane)
			switch {
			case errors.Is(err, report.ErrNoGraphs):
				logger.Infow("no graphs large enough to plot", "topology", res.Topology.String())
			case err != nil:
				return err
			default:
				logger.Infow("graph plot written", "path", path, "graphs", len(res.Graphs))
			}
		}

		if !cfg.Output.Histograms {
			continue
		}
		for _, value := range targets.Values() {
			if len(stats.Sizes(res.Regions, value)) == 0 {
				logger.Infow("no regions; histogram skipped", "value", value, "topology", res.Topology.String())
			}
		}
		paths, err := report.WriteHistograms(cfg.Output.Dir, suffix, res.Regions, targets)
		if err != nil {
			return err
		}
		for _, p := range paths {
			logger.Infow("histogram written", "path", p)
		}
	}

	if cfg.Output.SummaryFile != "" {
		path := filepath.Join(cfg.Output.Dir, cfg.Output.SummaryFile)
		if err := report.SaveYAML(path, rep); err != nil {
			return err
		}
		logger.Infow("summary written", "path", path)
	}
	if len(rep.Succeeded()) == 0 {
		return errors.New("every analysis run failed")
	}

	return nil
}

// Package config provides configuration loading and management for voxlab.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/neighborhood"
	"github.com/katalvlaran/voxlab/volume"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the application configuration loaded from YAML
type Config struct {
	// Analysis parameters consumed by the labeling core
	Analysis struct {
		// Targets are the intensities eligible for region discovery
		Targets []int `yaml:"targets"`

		// Border is the zero-padding thickness applied before labeling
		Border int `yaml:"border"`

		// Topologies lists the connectivity runs to perform, in order (6 and/or 26)
		Topologies []int `yaml:"topologies"`

		// MinRegionSize is the smallest reported region; never below 2
		MinRegionSize int `yaml:"minRegionSize"`
	} `yaml:"analysis"`

	// Input volume description
	Input struct {
		// Path of the raw voxel dump; ".gz" is decompressed
		Path string `yaml:"path,omitempty"`

		// Dims are the extents [n, m, k]
		Dims []int `yaml:"dims,omitempty"`

		// DType is the voxel encoding: uint8, uint16, int16 or int32
		DType string `yaml:"dtype"`
	} `yaml:"input"`

	// Output parameters
	Output struct {
		// Dir receives histograms and the summary file
		Dir string `yaml:"dir"`

		// Histograms enables PNG histogram rendering per target value
		Histograms bool `yaml:"histograms"`

		// SummaryFile, if set, is the YAML file name written under Dir
		SummaryFile string `yaml:"summaryFile,omitempty"`

		// GraphPlot enables one region-graph overview PNG per run
		GraphPlot bool `yaml:"graphPlot"`

		// GraphPlane is the projection of the graph overview: oblique, xy, xz or yz
		GraphPlane string `yaml:"graphPlane"`
	} `yaml:"output"`

	// Logging parameters
	Logging struct {
		// Level is a zap level name: debug, info, warn, error
		Level string `yaml:"level"`

		// Development switches to zap's human-friendly console encoder
		Development bool `yaml:"development"`
	} `yaml:"logging"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Analysis.Targets = label.DefaultTargets().Values()
	cfg.Analysis.Border = 1
	cfg.Analysis.Topologies = []int{int(neighborhood.FaceAdjacency), int(neighborhood.FullAdjacency)}
	cfg.Analysis.MinRegionSize = 2

	cfg.Input.DType = volume.Uint8.String()

	cfg.Output.Dir = "out"
	cfg.Output.Histograms = false
	cfg.Output.GraphPlane = "oblique"

	cfg.Logging.Level = "info"

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}

// Validate reports every problem in the analysis section at once.
// Topology values are checked here only for syntax; an unsupported
// topology aborts just its own run in the analysis driver.
func (c *Config) Validate() error {
	var err error

	if _, terr := label.NewTargetSet(c.Analysis.Targets...); terr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: analysis.targets: %w", ErrInvalidConfig, terr))
	}
	if c.Analysis.Border < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: analysis.border must be >= 0 (got %d)", ErrInvalidConfig, c.Analysis.Border))
	}
	if len(c.Analysis.Topologies) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: analysis.topologies is empty", ErrInvalidConfig))
	}
	if c.Analysis.MinRegionSize < 2 {
		err = multierr.Append(err, fmt.Errorf("%w: analysis.minRegionSize must be >= 2 (got %d)", ErrInvalidConfig, c.Analysis.MinRegionSize))
	}
	if c.Input.Path != "" {
		if len(c.Input.Dims) != 3 {
			err = multierr.Append(err, fmt.Errorf("%w: input.dims needs 3 extents (got %d)", ErrInvalidConfig, len(c.Input.Dims)))
		} else {
			for i, d := range c.Input.Dims {
				if d < 1 {
					err = multierr.Append(err, fmt.Errorf("%w: input.dims[%d] must be >= 1 (got %d)", ErrInvalidConfig, i, d))
				}
			}
		}
		if _, derr := volume.ParseDataType(c.Input.DType); derr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: input.dtype: %w", ErrInvalidConfig, derr))
		}
	}
	if _, lerr := c.LogLevel(); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, lerr))
	}

	return err
}

// TargetSet returns the configured targets as a validated set.
func (c *Config) TargetSet() (label.TargetSet, error) {
	return label.NewTargetSet(c.Analysis.Targets...)
}

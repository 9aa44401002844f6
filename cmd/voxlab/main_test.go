package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlab/config"
	"github.com/katalvlaran/voxlab/report"
	"github.com/katalvlaran/voxlab/volume"
)

// writeVolume stores a 3×3×3 uint8 volume with a 140 bar and a diagonal 255 pair.
func writeVolume(t *testing.T, dir string) string {
	t.Helper()
	v, err := volume.FromNested([][][]int{
		{{140, 140, 140}, {0, 0, 0}, {0, 0, 0}},
		{{0, 0, 0}, {255, 0, 0}, {0, 0, 0}},
		{{0, 0, 0}, {0, 0, 0}, {0, 255, 0}},
	})
	require.NoError(t, err)

	path := filepath.Join(dir, "scan.raw")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, volume.WriteRaw(f, v, volume.Uint8))
	require.NoError(t, f.Close())
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"voxlab"}, args...))
	return out.String(), err
}

// TestAnalyze_EndToEnd loads a raw file, prints both tables and writes outputs.
func TestAnalyze_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeVolume(t, dir)
	outDir := filepath.Join(dir, "out")

	out, err := run(t,
		"--config", filepath.Join(dir, "missing.yaml"),
		"analyze",
		"--input", input,
		"--dims", "3,3,3",
		"--out", outDir,
		"--summary", "summary.yaml",
		"--histograms",
		"--graph-plot",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "6-connectivity")
	assert.Contains(t, out, "26-connectivity")

	for _, name := range []string{
		"summary.yaml",
		"sizes_140_6.png", "sizes_140_26.png", "sizes_255_26.png",
		"graphs_6.png", "graphs_26.png",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(outDir, "sizes_255_6.png"))
	assert.True(t, os.IsNotExist(err), "255 has no 6-connected regions")
}

// TestAnalyze_ConfigErrors rejects missing input, invalid overrides and
// dims that do not match the file length.
func TestAnalyze_ConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "missing.yaml")

	_, err := run(t, "--config", cfgPath, "analyze")
	assert.ErrorContains(t, err, "no input volume")

	input := writeVolume(t, dir)
	_, err = run(t, "--config", cfgPath, "analyze", "--input", input, "--dims", "3,3,3", "--border=-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "--config", cfgPath, "analyze", "--input", input, "--dims", "3,3,3", "--graph-plane", "diagonal")
	assert.ErrorIs(t, err, report.ErrUnknownPlane)

	_, err = run(t, "--config", cfgPath, "analyze", "--input", input, "--dims", "3,3,2")
	assert.ErrorIs(t, err, volume.ErrTrailingData)

	out, err := run(t, "--config", cfgPath, "analyze", "--input", input, "--dims", "3,3,3", "--topology", "18")
	assert.ErrorContains(t, err, "every analysis run failed")
	assert.Contains(t, out, "topology 18")

	_, err = run(t, "--config", cfgPath, "analyze", "--input", input, "--dims", "3,3,4")
	assert.ErrorIs(t, err, volume.ErrShortData)
}

// TestInit writes defaults once and refuses to overwrite.
func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxlab.yaml")

	out, err := run(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = run(t, "init", path)
	assert.ErrorContains(t, err, "already exists")
}

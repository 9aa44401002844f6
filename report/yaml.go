package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/voxlab/analysis"
	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/regiongraph"
	"github.com/katalvlaran/voxlab/stats"
)

// Document is the YAML form of an analysis.Report.
type Document struct {
	OriginalDims [3]int `yaml:"originalDims,flow"`
	PaddedDims   [3]int `yaml:"paddedDims,flow"`
	Border       int    `yaml:"border"`
	Runs         []Run  `yaml:"runs"`
}

// Run is one topology's section of a Document.
type Run struct {
	Topology  int            `yaml:"topology"`
	Error     string         `yaml:"error,omitempty"`
	ElapsedMS int64          `yaml:"elapsedMs,omitempty"`
	Summary   *stats.Summary `yaml:"summary,omitempty"`
	Graphs    []GraphInfo    `yaml:"graphs,omitempty"`
}

// GraphInfo summarises one region graph. Bounds are inclusive padded
// coordinates.
type GraphInfo struct {
	ID         int    `yaml:"id"`
	Value      int    `yaml:"value"`
	Size       int    `yaml:"size"`
	Vertices   int    `yaml:"vertices"`
	Edges      int    `yaml:"edges"`
	Components int    `yaml:"components"`
	Min        [3]int `yaml:"min,flow"`
	Max        [3]int `yaml:"max,flow"`
}

// NewDocument converts rep. Failed runs keep only their error text.
func NewDocument(rep *analysis.Report) (*Document, error) {
	if rep == nil {
		return nil, fmt.Errorf("report: nil analysis report")
	}
	doc := &Document{
		OriginalDims: rep.OriginalDims,
		PaddedDims:   rep.PaddedDims,
		Border:       rep.Border,
		Runs:         make([]Run, 0, len(rep.Outcomes)),
	}
	for _, o := range rep.Outcomes {
		run := Run{Topology: o.Requested}
		if o.Err != nil {
			run.Error = o.Err.Error()
			doc.Runs = append(doc.Runs, run)
			continue
		}
		res := o.Result
		run.ElapsedMS = res.Elapsed.Milliseconds()
		summary := res.Summary
		run.Summary = &summary
		for _, g := range res.Graphs {
			info, err := graphInfo(g)
			if err != nil {
				return nil, err
			}
			run.Graphs = append(run.Graphs, info)
		}
		doc.Runs = append(doc.Runs, run)
	}

	return doc, nil
}

func graphInfo(g *regiongraph.Graph) (GraphInfo, error) {
	comps, err := regiongraph.Components(g)
	if err != nil {
		return GraphInfo{}, err
	}
	lo, hi := label.Region{Voxels: g.Vertices()}.Bounds()

	return GraphInfo{
		ID:         g.ID(),
		Value:      g.Value(),
		Size:       g.Size(),
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		Components: len(comps),
		Min:        [3]int{lo.X, lo.Y, lo.Z},
		Max:        [3]int{hi.X, hi.Y, hi.Z},
	}, nil
}

// WriteYAML encodes rep as a Document with two-space indentation.
func WriteYAML(w io.Writer, rep *analysis.Report) error {
	doc, err := NewDocument(rep)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

// SaveYAML writes rep to path, creating parent directories.
func SaveYAML(path string, rep *analysis.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := WriteYAML(f, rep); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

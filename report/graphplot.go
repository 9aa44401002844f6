package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/regiongraph"
)

// MaxPlotEdges is the edge count at which a graph is drawn as vertices only.
const MaxPlotEdges = 1000

// ErrNoGraphs is returned by WriteGraphPlot when graphs is empty.
var ErrNoGraphs = errors.New("report: no graphs to plot")

// ErrUnknownPlane indicates an unsupported projection name.
var ErrUnknownPlane = errors.New("report: unknown projection plane")

// Plane selects how voxel coordinates are flattened onto the page.
type Plane int

const (
	// PlaneOblique is a cabinet projection: z recedes at 45° with half scale.
	PlaneOblique Plane = iota
	// PlaneXY drops z.
	PlaneXY
	// PlaneXZ drops y.
	PlaneXZ
	// PlaneYZ drops x.
	PlaneYZ
)

// ParsePlane maps "oblique", "xy", "xz" or "yz" to a Plane.
// The empty string selects PlaneOblique.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oblique":
		return PlaneOblique, nil
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPlane, s)
}

func (p Plane) String() string {
	switch p {
	case PlaneOblique:
		return "oblique"
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	}

	return fmt.Sprintf("Plane(%d)", int(p))
}

const obliqueShift = 0.5 * math.Sqrt2 / 2

// Project returns the page coordinates of v.
func (p Plane) Project(v label.Voxel) (x, y float64) {
	switch p {
	case PlaneXY:
		return float64(v.X), float64(v.Y)
	case PlaneXZ:
		return float64(v.X), float64(v.Z)
	case PlaneYZ:
		return float64(v.Y), float64(v.Z)
	}

	return float64(v.X) + obliqueShift*float64(v.Z), float64(v.Y) + obliqueShift*float64(v.Z)
}

func (p Plane) axisLabels() (x, y string) {
	switch p {
	case PlaneXY:
		return "x", "y"
	case PlaneXZ:
		return "x", "z"
	case PlaneYZ:
		return "y", "z"
	}

	return "x (+ z/2 at 45°)", "y (+ z/2 at 45°)"
}

// ValueColor is the drawing colour of an intensity: 140 red, 200 green,
// 255 blue, anything else gray.
func ValueColor(value int) color.RGBA {
	switch value {
	case 140:
		return color.RGBA{R: 255, A: 255}
	case 200:
		return color.RGBA{G: 128, A: 255}
	case 255:
		return color.RGBA{B: 255, A: 255}
	}

	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// GraphPlotFile names the graph overview PNG, e.g. "graphs_26.png".
func GraphPlotFile(suffix string) string {
	if suffix == "" {
		return "graphs.png"
	}
	return "graphs_" + suffix + ".png"
}

// WriteGraphPlot draws every graph into one PNG under dir and returns its
// path. Vertices are coloured by value; face edges are drawn for graphs
// with fewer than MaxPlotEdges edges. Returns ErrNoGraphs for empty input.
func WriteGraphPlot(dir, suffix string, graphs []*regiongraph.Graph, plane Plane) (string, error) {
	if len(graphs) == 0 {
		return "", ErrNoGraphs
	}
	p, _, err := graphPlot(graphs, plane, suffix)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create directory: %w", err)
	}
	path := filepath.Join(dir, GraphPlotFile(suffix))
	if err := p.Save(9*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("report: save %s: %w", path, err)
	}

	return path, nil
}

// graphPlot builds the overview plot and reports how many edges it drew.
func graphPlot(graphs []*regiongraph.Graph, plane Plane, suffix string) (*plot.Plot, int, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Region graphs: %d total", len(graphs))
	if suffix != "" {
		p.Title.Text += " (" + suffix + ")"
	}
	p.X.Label.Text, p.Y.Label.Text = plane.axisLabels()
	p.Legend.Top = true

	legend := make(map[int]bool)
	drawn := 0
	for _, g := range graphs {
		base := ValueColor(g.Value())
		verts := g.Vertices()

		if g.EdgeCount() < MaxPlotEdges {
			for _, e := range g.Edges() {
				ax, ay := plane.Project(e.From)
				bx, by := plane.Project(e.To)
				l, err := plotter.NewLine(plotter.XYs{{X: ax, Y: ay}, {X: bx, Y: by}})
				if err != nil {
					return nil, 0, fmt.Errorf("report: edge of graph %d: %w", g.ID(), err)
				}
				l.LineStyle.Color = withAlpha(base, 0.3)
				l.LineStyle.Width = vg.Points(0.5)
				p.Add(l)
				drawn++
			}
		}

		pts := make(plotter.XYs, len(verts))
		for i, v := range verts {
			pts[i].X, pts[i].Y = plane.Project(v)
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, 0, fmt.Errorf("report: vertices of graph %d: %w", g.ID(), err)
		}
		s.GlyphStyle.Color = withAlpha(base, 0.7)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vertexRadius(len(verts))
		p.Add(s)

		if !legend[g.Value()] {
			legend[g.Value()] = true
			p.Legend.Add(fmt.Sprintf("value %d", g.Value()), s)
		}
	}

	return p, drawn, nil
}

// vertexRadius shrinks markers for large graphs: marker area runs from
// 50 pt² down to 10 pt².
func vertexRadius(n int) vg.Length {
	area := math.Max(10, math.Min(50, 200/float64(n)))
	return vg.Points(math.Sqrt(area) / 2)
}

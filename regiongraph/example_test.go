// File: regiongraph/example_test.go
package regiongraph_test

import (
	"fmt"

	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/neighborhood"
	"github.com/katalvlaran/voxlab/regiongraph"
	"github.com/katalvlaran/voxlab/volume"
)

////////////////////////////////////////////////////////////////////////////////
// Example: BuildAll
////////////////////////////////////////////////////////////////////////////////

// ExampleBuildAll shows that graph edges ignore the labeling topology.
// Scenario:
//
//   - An L of three 200s plus one 200 touching the L only at an edge.
//   - 26-connectivity labels all four as one region.
//   - The face-adjacency graph has 2 edges and 2 components.
func ExampleBuildAll() {
	v, _ := volume.FromNested([][][]int{{
		{200, 200, 0},
		{200, 0, 0},
		{0, 200, 0},
	}})
	regions, _ := label.Label(v, label.DefaultTargets(), neighborhood.FullAdjacency)

	for _, g := range regiongraph.BuildAll(regions) {
		comps, _ := regiongraph.Components(g)
		fmt.Printf("graph %d: value=%d vertices=%d edges=%d components=%d\n",
			g.ID(), g.Value(), g.VertexCount(), g.EdgeCount(), len(comps))
	}

	// Output:
	// graph 1: value=200 vertices=4 edges=2 components=2
}

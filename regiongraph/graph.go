package regiongraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/voxlab/label"
	"github.com/katalvlaran/voxlab/neighborhood"
)

// Edge is an undirected face contact between two voxels of one region.
// From was discovered before To in the region's voxel order.
type Edge struct {
	From, To label.Voxel
}

// Graph is the face-adjacency graph of one region. It is immutable.
//
// Vertices keep the region's discovery order; adj[i] lists the neighbor
// indices of vertex i in face-offset order (+x, -x, +y, -y, +z, -z).
type Graph struct {
	id    int
	value int
	size  int

	vertices []label.Voxel
	index    map[label.Voxel]int
	adj      [][]int
	edges    []Edge
}

// Build constructs the face-adjacency graph of r with the given identifier.
// It returns (nil, false) when r has fewer than two voxels.
// Duplicate voxels in r collapse to one vertex.
// Complexity: O(S·6) time, O(S + E) memory.
func Build(r label.Region, id int) (*Graph, bool) {
	if r.Size() < 2 {
		return nil, false
	}
	g := &Graph{
		id:       id,
		value:    r.Value,
		size:     r.Size(),
		vertices: make([]label.Voxel, 0, r.Size()),
		index:    make(map[label.Voxel]int, r.Size()),
	}
	for _, v := range r.Voxels {
		if _, dup := g.index[v]; dup {
			continue
		}
		g.index[v] = len(g.vertices)
		g.vertices = append(g.vertices, v)
	}

	g.adj = make([][]int, len(g.vertices))
	offsets := neighborhood.FaceOffsets()
	for i, v := range g.vertices {
		for _, d := range offsets {
			j, ok := g.index[v.Add(d)]
			if !ok {
				continue
			}
			g.adj[i] = append(g.adj[i], j)
			// each unordered pair is seen from both ends; keep it once
			if i < j {
				g.edges = append(g.edges, Edge{From: v, To: g.vertices[j]})
			}
		}
	}

	return g, true
}

// BuildAll builds graphs for every region of size >= 2 and numbers them
// 1..n in region order. An empty input yields an empty, non-nil slice.
func BuildAll(regions []label.Region) []*Graph {
	out := make([]*Graph, 0, len(regions))
	for _, r := range regions {
		if g, ok := Build(r, len(out)+1); ok {
			out = append(out, g)
		}
	}

	return out
}

// ID returns the graph's 1-based sequence number.
func (g *Graph) ID() int { return g.id }

// Value returns the intensity shared by every vertex.
func (g *Graph) Value() int { return g.value }

// Size returns the source region's voxel count.
func (g *Graph) Size() int { return g.size }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns a copy of the vertices in region discovery order.
func (g *Graph) Vertices() []label.Voxel {
	return slices.Clone(g.vertices)
}

// Edges returns a copy of the edges, each unordered pair once.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// HasVertex reports whether v is a vertex.
func (g *Graph) HasVertex(v label.Voxel) bool {
	_, ok := g.index[v]
	return ok
}

// HasEdge reports whether u and v are joined, in either direction.
func (g *Graph) HasEdge(u, v label.Voxel) bool {
	i, ok := g.index[u]
	if !ok {
		return false
	}
	j, ok := g.index[v]
	if !ok {
		return false
	}

	return slices.Contains(g.adj[i], j)
}

// Neighbors returns the face neighbors of v inside the region.
func (g *Graph) Neighbors(v label.Voxel) ([]label.Voxel, error) {
	i, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]label.Voxel, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.vertices[j]
	}

	return out, nil
}

// Degree returns the number of face neighbors of v (0..6).
func (g *Graph) Degree(v label.Voxel) (int, error) {
	i, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return len(g.adj[i]), nil
}

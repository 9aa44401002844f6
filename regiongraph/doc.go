// Package regiongraph turns labeled regions into undirected voxel graphs
// for downstream visualization and topology checks.
//
// What:
//
//   - Build makes one Graph per region: vertices are the region's voxels,
//     edges join voxels that differ by exactly one face offset.
//   - BuildAll numbers the graphs 1..n in region discovery order.
//   - BFS walks a Graph with depth limits and visit hooks.
//   - Components splits a Graph into its connected pieces.
//
// Edges always use face adjacency, whatever topology discovered the region:
// a region found under 26-connectivity whose voxels touch only at edges or
// corners appears here as several disconnected components.
//
// Complexity:
//
//   - Build:      O(S·6) time, O(S + E) memory, S = region size.
//   - BFS:        O(S + E).
//   - Components: O(S + E).
//
// Errors:
//
//   - ErrGraphNil:        nil *Graph passed to BFS or Components.
//   - ErrVertexNotFound:  voxel is not a vertex of the graph.
//   - ErrOptionViolation: invalid BFS option (negative MaxDepth).
//
// Graphs are read-only after Build and safe for concurrent readers.
package regiongraph

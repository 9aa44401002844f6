// Package voxlab finds connected regions of equal intensity in 3D voxel
// volumes and turns each region into a graph you can walk.
//
// 🚀 What is voxlab?
//
//	A small pipeline of single-purpose packages:
//		• volume: immutable n×m×k intensity grids, zero padding, raw loaders
//		• neighborhood: 6- and 26-voxel adjacency offsets
//		• label: breadth-first multi-label connected-component labeling
//		• regiongraph: face-adjacency graphs per region, BFS and components
//		• stats: per-value counts, extrema, mean, median and size buckets
//		• config, analysis, report: YAML runs, orchestration and output
//
// ✨ Guarantees
//
//   - Deterministic – regions come out in scan order, voxels in BFS order
//   - Independent runs – a 6 run never sees labels from a 26 run
//   - Zero background – value 0 never forms a region
//
// Quick ASCII example (one z-slice, 6-connectivity, target 200):
//
//	200 200  0
//	 0   0   0
//	 0  200 200
//
// yields two regions of size 2 and two graphs with one edge each.
//
//	go install github.com/katalvlaran/voxlab/cmd/voxlab@latest
package voxlab

// Package label finds maximal same-value connected regions in a 3D volume,
// restricted to a closed set of target intensities.
//
// What:
//
//   - Label scans every cell once in (x, y, z) order and flood-fills each
//     unclaimed target-valued cell under a neighborhood.Topology.
//   - Neighbors join a region only on exact value equality, so two adjacent
//     target values (e.g. 140 next to 200) never merge.
//   - Regions with fewer than two voxels are discarded.
//   - LabelMap additionally returns a dense label grid (0 = no region).
//
// Why:
//
//   - Multi-label segmentation of CT scans: each tissue intensity class
//     is partitioned independently in a single pass.
//
// Complexity:
//
//   - Label: O(N·d) time, O(N) memory for the visited grid and queue,
//     where N is the cell count and d = 6 or 26.
//   - The flood fill uses an explicit queue; stack depth is constant.
//
// Errors:
//
//   - ErrNilVolume: nil volume.
//   - ErrEmptyTargets: target set has no values.
//   - neighborhood.ErrUnsupportedTopology: topology other than 6 or 26.
//   - ErrOptionViolation: invalid Option (e.g. WithMinSize(1)).
//
// All errors are reported before any traversal starts; once validated,
// labeling cannot fail. The input volume is never modified and each call
// allocates its own visited grid, so runs with different topologies over
// the same volume are independent.
package label

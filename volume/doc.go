// Package volume holds dense 3D scalar volumes (CT-style integer intensity
// grids) and the boundary utilities the labeling engine relies on.
//
// What:
//
//   - Volume wraps an n×m×k grid of int cells in one flat x-major slice.
//   - FromNested / FromFlat / FromFunc build volumes and reject ragged input.
//   - Pad surrounds a volume with a zero border of thickness b.
//   - ReadRaw / LoadRaw decode little-endian raw voxel dumps (optionally gzipped).
//
// Why:
//
//   - A zero border lets flood fills run to the edge of the scan without
//     two real regions ever touching through the boundary, as long as 0 is
//     never a target intensity.
//   - A flat slice keeps At() to one multiply-add and makes a same-shape
//     visited grid a single []bool.
//
// Complexity:
//
//   - FromNested, FromFlat, FromFunc: O(n·m·k) time and memory.
//   - Pad: O((n+2b)·(m+2b)·(k+2b)).
//   - At, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyVolume: some extent is zero.
//   - ErrInvalidVolumeShape: nested input is ragged, or flat data has the wrong length.
//   - ErrNegativeBorder: Pad called with b < 0.
//   - ErrNilVolume: nil *Volume passed to Pad.
//   - ErrVolumeTooLarge: the cell count would exceed MaxCells.
//   - ErrShortData, ErrTrailingData, ErrUnknownDataType: raw decoding failures;
//     the stream must hold exactly nx·ny·nz voxels.
//   - ErrValueOutOfRange: WriteRaw given a value its data type cannot hold.
package volume

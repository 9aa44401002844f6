package volume

import "errors"

var (
	// ErrEmptyVolume indicates some extent of the volume is zero.
	ErrEmptyVolume = errors.New("volume: every extent must be at least 1")
	// ErrInvalidVolumeShape indicates ragged nested input or a flat slice of the wrong length.
	ErrInvalidVolumeShape = errors.New("volume: invalid volume shape")
	// ErrNegativeBorder indicates a negative padding thickness.
	ErrNegativeBorder = errors.New("volume: border thickness must be non-negative")
	// ErrNilVolume indicates a nil *Volume was supplied.
	ErrNilVolume = errors.New("volume: volume is nil")
	// ErrShortData indicates the raw stream ended before every voxel was read.
	ErrShortData = errors.New("volume: raw data shorter than volume extents")
	// ErrUnknownDataType indicates an unsupported raw voxel encoding.
	ErrUnknownDataType = errors.New("volume: unknown raw data type")
	// ErrTrailingData indicates the raw stream holds bytes past the last voxel.
	ErrTrailingData = errors.New("volume: raw data longer than volume extents")
	// ErrVolumeTooLarge indicates the cell count would exceed MaxCells.
	ErrVolumeTooLarge = errors.New("volume: too many cells")
	// ErrValueOutOfRange indicates a cell value the raw data type cannot hold.
	ErrValueOutOfRange = errors.New("volume: value out of range for data type")
)

package volume

import "fmt"

// Pad returns a new volume of extents (n+2b, m+2b, k+2b) with v centered at
// offset (b, b, b) and every other cell set to 0. b == 0 yields a copy.
//
// 0 is the fill value, so labeling with a target set that excludes 0 can
// never join two regions through the border.
//
// Returns ErrNilVolume, ErrNegativeBorder or ErrVolumeTooLarge before any
// allocation.
// Complexity: O((n+2b)·(m+2b)·(k+2b)) time and memory.
func Pad(v *Volume, b int) (*Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	if b < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBorder, b)
	}
	if b > (MaxCells-max(v.nx, v.ny, v.nz))/2 {
		return nil, fmt.Errorf("%w: border %d", ErrVolumeTooLarge, b)
	}
	out, err := New(v.nx+2*b, v.ny+2*b, v.nz+2*b)
	if err != nil {
		return nil, err
	}
	for x := 0; x < v.nx; x++ {
		for y := 0; y < v.ny; y++ {
			src := v.Index(x, y, 0)
			copy(out.cells[out.Index(x+b, y+b, b):], v.cells[src:src+v.nz])
		}
	}

	return out, nil
}

// PadNested validates a nested grid and pads it in one step.
// Ragged input is rejected with ErrInvalidVolumeShape.
func PadNested(values [][][]int, b int) (*Volume, error) {
	if b < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBorder, b)
	}
	v, err := FromNested(values)
	if err != nil {
		return nil, err
	}

	return Pad(v, b)
}

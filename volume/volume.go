package volume

import (
	"fmt"
	"math"
)

// MaxCells bounds the cell count of any volume so flat indices and region
// labels fit in an int32.
const MaxCells = math.MaxInt32

// Volume is a dense 3D grid of integer cell values with extents NX×NY×NZ.
// It is immutable once built; all constructors deep-copy their input.
// Cells are stored x-major: index = (x*NY + y)*NZ + z, so a lexicographic
// (x, y, z) scan walks the slice front to back.
type Volume struct {
	nx, ny, nz int
	cells      []int
}

// New returns a zero-filled volume of the given extents.
// Returns ErrEmptyVolume if any extent is < 1 and ErrVolumeTooLarge if
// nx·ny·nz exceeds MaxCells.
func New(nx, ny, nz int) (*Volume, error) {
	if err := checkExtents(nx, ny, nz); err != nil {
		return nil, err
	}

	return &Volume{nx: nx, ny: ny, nz: nz, cells: make([]int, nx*ny*nz)}, nil
}

// FromNested builds a Volume from values[x][y][z], validating that every
// row and column has the same length as the first.
// Returns ErrEmptyVolume for zero extents and ErrInvalidVolumeShape
// (wrapped with the offending position) for ragged input.
// Complexity: O(n·m·k).
func FromNested(values [][][]int) (*Volume, error) {
	nx, ny, nz, err := validateNested(values)
	if err != nil {
		return nil, err
	}
	v := &Volume{nx: nx, ny: ny, nz: nz, cells: make([]int, nx*ny*nz)}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			copy(v.cells[v.Index(x, y, 0):], values[x][y])
		}
	}

	return v, nil
}

// FromFlat builds a Volume from an x-major flat slice. The data is copied.
// Returns ErrInvalidVolumeShape if len(data) != nx*ny*nz.
func FromFlat(nx, ny, nz int, data []int) (*Volume, error) {
	v, err := New(nx, ny, nz)
	if err != nil {
		return nil, err
	}
	if len(data) != len(v.cells) {
		return nil, fmt.Errorf("%w: %d cells for %dx%dx%d volume", ErrInvalidVolumeShape, len(data), nx, ny, nz)
	}
	copy(v.cells, data)

	return v, nil
}

// FromFunc builds a Volume by evaluating fn at every (x, y, z) in scan order.
func FromFunc(nx, ny, nz int, fn func(x, y, z int) int) (*Volume, error) {
	v, err := New(nx, ny, nz)
	if err != nil {
		return nil, err
	}
	i := 0
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				v.cells[i] = fn(x, y, z)
				i++
			}
		}
	}

	return v, nil
}

// checkExtents rejects zero extents and products above MaxCells without
// computing an overflowing product.
func checkExtents(nx, ny, nz int) error {
	if nx < 1 || ny < 1 || nz < 1 {
		return fmt.Errorf("%w: got %dx%dx%d", ErrEmptyVolume, nx, ny, nz)
	}
	if nx > MaxCells || ny > MaxCells/nx || nz > MaxCells/(nx*ny) {
		return fmt.Errorf("%w: %dx%dx%d exceeds %d cells", ErrVolumeTooLarge, nx, ny, nz, MaxCells)
	}

	return nil
}

// validateNested returns the extents of a rectangular nested grid.
func validateNested(values [][][]int) (nx, ny, nz int, err error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return 0, 0, 0, ErrEmptyVolume
	}
	nx, ny, nz = len(values), len(values[0]), len(values[0][0])
	for x, plane := range values {
		if len(plane) != ny {
			return 0, 0, 0, fmt.Errorf("%w: plane %d has %d rows, want %d", ErrInvalidVolumeShape, x, len(plane), ny)
		}
		for y, row := range plane {
			if len(row) != nz {
				return 0, 0, 0, fmt.Errorf("%w: row [%d][%d] has %d cells, want %d", ErrInvalidVolumeShape, x, y, len(row), nz)
			}
		}
	}

	return nx, ny, nz, nil
}

// Dims returns the extents (n, m, k).
func (v *Volume) Dims() (nx, ny, nz int) {
	return v.nx, v.ny, v.nz
}

// Len returns the number of cells.
func (v *Volume) Len() int {
	return len(v.cells)
}

// InBounds reports whether (x, y, z) lies inside the volume.
// Complexity: O(1).
func (v *Volume) InBounds(x, y, z int) bool {
	return x >= 0 && x < v.nx && y >= 0 && y < v.ny && z >= 0 && z < v.nz
}

// At returns the value at (x, y, z). The caller must ensure InBounds.
func (v *Volume) At(x, y, z int) int {
	return v.cells[v.Index(x, y, z)]
}

// AtIndex returns the value stored at flat index i.
func (v *Volume) AtIndex(i int) int {
	return v.cells[i]
}

// Index maps (x, y, z) to its x-major flat index.
// Complexity: O(1).
func (v *Volume) Index(x, y, z int) int {
	return (x*v.ny+y)*v.nz + z
}

// Coordinate converts a flat index back to (x, y, z).
// Complexity: O(1).
func (v *Volume) Coordinate(i int) (x, y, z int) {
	z = i % v.nz
	i /= v.nz

	return i / v.ny, i % v.ny, z
}

// Nested returns a deep copy of the cells as values[x][y][z].
func (v *Volume) Nested() [][][]int {
	out := make([][][]int, v.nx)
	for x := range out {
		out[x] = make([][]int, v.ny)
		for y := range out[x] {
			start := v.Index(x, y, 0)
			out[x][y] = append([]int(nil), v.cells[start:start+v.nz]...)
		}
	}

	return out
}

// Count returns how many cells hold value.
func (v *Volume) Count(value int) int {
	n := 0
	for _, c := range v.cells {
		if c == value {
			n++
		}
	}

	return n
}

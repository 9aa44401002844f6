package volume

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// DataType selects the on-disk encoding of one voxel in a raw dump.
type DataType int

const (
	// Uint8 stores one unsigned byte per voxel.
	Uint8 DataType = iota
	// Uint16 stores a little-endian unsigned 16-bit value per voxel.
	Uint16
	// Int16 stores a little-endian signed 16-bit value per voxel (typical for Hounsfield units).
	Int16
	// Int32 stores a little-endian signed 32-bit value per voxel.
	Int32
)

// ParseDataType maps "uint8", "uint16", "int16" or "int32" to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uint8", "u8", "byte":
		return Uint8, nil
	case "uint16", "u16":
		return Uint16, nil
	case "int16", "i16":
		return Int16, nil
	case "int32", "i32":
		return Int32, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDataType, s)
}

// Size returns the number of bytes per voxel.
func (d DataType) Size() int {
	switch d {
	case Uint8:
		return 1
	case Uint16, Int16:
		return 2
	case Int32:
		return 4
	}

	return 0
}

// Range returns the smallest and largest value d can encode.
func (d DataType) Range() (lo, hi int) {
	switch d {
	case Uint8:
		return 0, math.MaxUint8
	case Uint16:
		return 0, math.MaxUint16
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	}

	return 0, -1
}

func (d DataType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	}

	return fmt.Sprintf("DataType(%d)", int(d))
}

// ReadRaw decodes nx·ny·nz voxels of type dt from r in x-major order.
// r must end right after the last voxel: returns ErrShortData if it ends
// early and ErrTrailingData if bytes remain.
func ReadRaw(r io.Reader, nx, ny, nz int, dt DataType) (*Volume, error) {
	size := dt.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDataType, dt)
	}
	v, err := New(nx, ny, nz)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(v.cells)*size)
	if _, err = io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrShortData, err)
		}
		return nil, fmt.Errorf("volume: read raw data: %w", err)
	}
	var extra [1]byte
	n, err := io.ReadFull(r, extra[:])
	switch {
	case n > 0:
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%dx%d %v", ErrTrailingData, len(buf), nx, ny, nz, dt)
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("volume: read raw data: %w", err)
	}
	for i := range v.cells {
		p := buf[i*size:]
		switch dt {
		case Uint8:
			v.cells[i] = int(p[0])
		case Uint16:
			v.cells[i] = int(binary.LittleEndian.Uint16(p))
		case Int16:
			v.cells[i] = int(int16(binary.LittleEndian.Uint16(p)))
		case Int32:
			v.cells[i] = int(int32(binary.LittleEndian.Uint32(p)))
		}
	}

	return v, nil
}

// LoadRaw opens path and decodes it with ReadRaw. Paths ending in ".gz"
// are gunzipped on the fly.
func LoadRaw(path string, nx, ny, nz int, dt DataType) (*Volume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("volume: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("volume: gzip header in %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return ReadRaw(r, nx, ny, nz, dt)
}

// WriteRaw encodes v to w as little-endian voxels of type dt.
// Returns ErrValueOutOfRange, before writing anything, if some cell does
// not fit in dt.
func WriteRaw(w io.Writer, v *Volume, dt DataType) error {
	if v == nil {
		return ErrNilVolume
	}
	size := dt.Size()
	if size == 0 {
		return fmt.Errorf("%w: %v", ErrUnknownDataType, dt)
	}
	lo, hi := dt.Range()
	for i, c := range v.cells {
		if c < lo || c > hi {
			x, y, z := v.Coordinate(i)
			return fmt.Errorf("%w: %d at (%d,%d,%d) for %v", ErrValueOutOfRange, c, x, y, z, dt)
		}
	}
	buf := make([]byte, len(v.cells)*size)
	for i, c := range v.cells {
		p := buf[i*size:]
		switch dt {
		case Uint8:
			p[0] = byte(c)
		case Uint16, Int16:
			binary.LittleEndian.PutUint16(p, uint16(c))
		case Int32:
			binary.LittleEndian.PutUint32(p, uint32(int32(c)))
		}
	}
	_, err := w.Write(buf)

	return err
}

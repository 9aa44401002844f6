// Package neighborhood names the voxel adjacency relations used by the
// labeling engine and the region-graph builder.
//
// Two topologies exist:
//
//   - FaceAdjacency (6-connectivity): (±1,0,0), (0,±1,0), (0,0,±1).
//   - FullAdjacency (26-connectivity): every offset in {-1,0,1}³ except the origin.
//
// A Topology is a plain value with no mutable state. Any other value is a
// configuration error (ErrUnsupportedTopology); callers must reject it
// rather than fall back to a default.
package neighborhood

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedTopology indicates a connectivity other than 6 or 26.
var ErrUnsupportedTopology = errors.New("neighborhood: unsupported topology")

// Offset is a relative step (DX, DY, DZ) to a neighboring voxel.
type Offset struct {
	DX, DY, DZ int
}

// Topology selects neighbor connectivity. Its integer value is the
// neighbor count so that configuration files can say 6 or 26.
type Topology int

const (
	// FaceAdjacency uses the 6 axis-aligned unit offsets.
	FaceAdjacency Topology = 6
	// FullAdjacency uses all 26 offsets of the unit cube.
	FullAdjacency Topology = 26
)

// faceOffsets are ordered +x, -x, +y, -y, +z, -z.
var faceOffsets = []Offset{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// fullOffsets are lexicographic over {-1,0,1}³ with the origin skipped.
var fullOffsets = func() []Offset {
	out := make([]Offset, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out = append(out, Offset{dx, dy, dz})
			}
		}
	}
	return out
}()

// Validate returns ErrUnsupportedTopology unless t is FaceAdjacency or FullAdjacency.
func (t Topology) Validate() error {
	switch t {
	case FaceAdjacency, FullAdjacency:
		return nil
	}

	return fmt.Errorf("%w: %d (want 6 or 26)", ErrUnsupportedTopology, int(t))
}

// Offsets returns a fresh copy of t's offset table in its fixed order.
// It returns nil for an unsupported topology.
func (t Topology) Offsets() []Offset {
	switch t {
	case FaceAdjacency:
		return append([]Offset(nil), faceOffsets...)
	case FullAdjacency:
		return append([]Offset(nil), fullOffsets...)
	}

	return nil
}

// Degree returns the number of neighbors t considers, or 0 if unsupported.
func (t Topology) Degree() int {
	if t.Validate() != nil {
		return 0
	}

	return int(t)
}

func (t Topology) String() string {
	if t.Validate() != nil {
		return fmt.Sprintf("Topology(%d)", int(t))
	}

	return fmt.Sprintf("%d-connectivity", int(t))
}

// FaceOffsets returns a copy of the 6 face offsets. Graph edges always use
// this set, whatever topology discovered the region.
func FaceOffsets() []Offset {
	return append([]Offset(nil), faceOffsets...)
}

// Parse converts a neighbor count to a Topology.
func Parse(n int) (Topology, error) {
	t := Topology(n)
	if err := t.Validate(); err != nil {
		return 0, err
	}

	return t, nil
}

// ParseString accepts "6", "26", "face" or "full" (case-insensitive).
func ParseString(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "face":
		return FaceAdjacency, nil
	case "full":
		return FullAdjacency, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTopology, s)
	}

	return Parse(n)
}

package label

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/voxlab/neighborhood"
)

// Voxel identifies one cell by its integer coordinates. It is comparable
// and can be used directly as a map key.
type Voxel struct {
	X, Y, Z int
}

// Add returns the voxel displaced by o.
func (v Voxel) Add(o neighborhood.Offset) Voxel {
	return Voxel{v.X + o.DX, v.Y + o.DY, v.Z + o.DZ}
}

// Less orders voxels lexicographically by (X, Y, Z).
func (v Voxel) Less(w Voxel) bool {
	if v.X != w.X {
		return v.X < w.X
	}
	if v.Y != w.Y {
		return v.Y < w.Y
	}
	return v.Z < w.Z
}

// String formats the voxel as "x,y,z".
func (v Voxel) String() string {
	b := make([]byte, 0, 16)
	b = strconv.AppendInt(b, int64(v.X), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(v.Y), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(v.Z), 10)

	return string(b)
}

// Region is one connected group of equal-valued voxels.
// Voxels are in BFS discovery order; the seed is Voxels[0].
type Region struct {
	Value  int
	Voxels []Voxel
}

// Size returns the number of voxels in r.
func (r Region) Size() int {
	return len(r.Voxels)
}

// Bounds returns the inclusive axis-aligned bounding box of r.
// It returns zero voxels for an empty region.
func (r Region) Bounds() (lo, hi Voxel) {
	if len(r.Voxels) == 0 {
		return Voxel{}, Voxel{}
	}
	lo, hi = r.Voxels[0], r.Voxels[0]
	for _, v := range r.Voxels[1:] {
		lo = Voxel{min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z)}
		hi = Voxel{max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z)}
	}

	return lo, hi
}

// TargetSet is a closed, sorted set of intensities eligible for labeling.
// The zero TargetSet is empty and rejected by Label.
type TargetSet struct {
	values []int
}

// DefaultTargets returns {140, 200, 255}.
func DefaultTargets() TargetSet {
	return TargetSet{values: []int{140, 200, 255}}
}

// NewTargetSet builds a set from values; duplicates collapse.
// Returns ErrEmptyTargets for no values and ErrZeroTarget if 0 is present.
func NewTargetSet(values ...int) (TargetSet, error) {
	if len(values) == 0 {
		return TargetSet{}, ErrEmptyTargets
	}
	vs := slices.Clone(values)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	if _, found := slices.BinarySearch(vs, 0); found {
		return TargetSet{}, ErrZeroTarget
	}

	return TargetSet{values: vs}, nil
}

// MustTargetSet is like NewTargetSet but panics on error.
func MustTargetSet(values ...int) TargetSet {
	s, err := NewTargetSet(values...)
	if err != nil {
		panic(fmt.Sprintf("label: MustTargetSet%v: %v", values, err))
	}

	return s
}

// Contains reports whether value is a target.
func (s TargetSet) Contains(value int) bool {
	_, found := slices.BinarySearch(s.values, value)
	return found
}

// Values returns the targets in ascending order.
func (s TargetSet) Values() []int {
	return slices.Clone(s.values)
}

// Len returns the number of targets.
func (s TargetSet) Len() int {
	return len(s.values)
}

// Option configures Label via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Label runs.
type Option func(*Options)

// Options holds tunables for a labeling run.
type Options struct {
	// MinSize is the smallest region size that is reported. Must be >= 2.
	MinSize int

	// OnRegion is called once per recorded region, in discovery order.
	OnRegion func(index int, r Region)

	err error
}

// DefaultOptions returns MinSize = 2 and a no-op OnRegion hook.
func DefaultOptions() Options {
	return Options{
		MinSize:  2,
		OnRegion: func(int, Region) {},
	}
}

// WithMinSize raises the reporting threshold. Values below 2 are invalid:
// single-voxel regions are never reported.
func WithMinSize(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: MinSize must be >= 2 (got %d)", ErrOptionViolation, n)
			return
		}
		o.MinSize = n
	}
}

// WithOnRegion registers a hook run for each recorded region.
func WithOnRegion(fn func(index int, r Region)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRegion = fn
		}
	}
}

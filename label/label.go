package label

import (
	"github.com/katalvlaran/voxlab/neighborhood"
	"github.com/katalvlaran/voxlab/volume"
)

// labeler holds the state of one labeling run. It is never shared.
type labeler struct {
	vol     *volume.Volume
	targets TargetSet
	offsets []neighborhood.Offset
	opts    Options

	visited []bool
	queue   []int // flat indices; after a fill it holds the whole region
	regions []Region
	labels  []int32 // nil unless LabelMap was called
}

// Label partitions v into regions of identical target value connected
// under topo, returning them in discovery order.
//
// Cells are scanned in (x, y, z) ascending order. A non-target cell is
// marked visited and skipped. An unvisited target cell seeds a BFS that
// claims every in-bounds, unvisited neighbor holding exactly the seed's
// value. Regions smaller than MinSize (default 2) are dropped.
//
// Time: O(N·d). Memory: O(N).
func Label(v *volume.Volume, targets TargetSet, topo neighborhood.Topology, opts ...Option) ([]Region, error) {
	l, err := newLabeler(v, targets, topo, opts)
	if err != nil {
		return nil, err
	}
	l.run()

	return l.regions, nil
}

// LabelMap runs Label and also returns a dense label grid aligned with v's
// flat index: labels[i] = k+1 if cell i belongs to regions[k], else 0.
func LabelMap(v *volume.Volume, targets TargetSet, topo neighborhood.Topology, opts ...Option) ([]Region, []int32, error) {
	l, err := newLabeler(v, targets, topo, opts)
	if err != nil {
		return nil, nil, err
	}
	l.labels = make([]int32, v.Len())
	l.run()

	return l.regions, l.labels, nil
}

// newLabeler validates every input before allocating traversal state.
func newLabeler(v *volume.Volume, targets TargetSet, topo neighborhood.Topology, opts []Option) (*labeler, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	if targets.Len() == 0 {
		return nil, ErrEmptyTargets
	}
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &labeler{
		vol:     v,
		targets: targets,
		offsets: topo.Offsets(),
		opts:    o,
		visited: make([]bool, v.Len()),
		regions: make([]Region, 0),
	}, nil
}

// run performs the single scan over every cell.
func (l *labeler) run() {
	for i := 0; i < l.vol.Len(); i++ {
		if l.visited[i] {
			continue
		}
		value := l.vol.AtIndex(i)
		if !l.targets.Contains(value) {
			l.visited[i] = true
			continue
		}
		l.fill(i, value)
		if len(l.queue) >= l.opts.MinSize {
			l.record(value)
		}
	}
}

// fill claims the region seeded at flat index seed. On return l.queue
// holds the region's indices in discovery order.
func (l *labeler) fill(seed, value int) {
	l.queue = append(l.queue[:0], seed)
	l.visited[seed] = true

	for qi := 0; qi < len(l.queue); qi++ {
		x, y, z := l.vol.Coordinate(l.queue[qi])
		for _, d := range l.offsets {
			nx, ny, nz := x+d.DX, y+d.DY, z+d.DZ
			if !l.vol.InBounds(nx, ny, nz) {
				continue
			}
			ni := l.vol.Index(nx, ny, nz)
			if l.visited[ni] || l.vol.AtIndex(ni) != value {
				continue
			}
			l.visited[ni] = true
			l.queue = append(l.queue, ni)
		}
	}
}

// record converts the current queue into a Region.
func (l *labeler) record(value int) {
	r := Region{Value: value, Voxels: make([]Voxel, len(l.queue))}
	k := int32(len(l.regions) + 1)
	for j, idx := range l.queue {
		x, y, z := l.vol.Coordinate(idx)
		r.Voxels[j] = Voxel{x, y, z}
		if l.labels != nil {
			l.labels[idx] = k
		}
	}
	l.regions = append(l.regions, r)
	l.opts.OnRegion(len(l.regions)-1, r)
}

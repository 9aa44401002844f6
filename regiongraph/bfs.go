package regiongraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/voxlab/label"
)

// Option configures BFS via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks for a traversal.
type BFSOptions struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit is called when a vertex is visited. A non-nil error aborts the walk.
	OnVisit func(v label.Voxel, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context, no depth limit and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(label.Voxel, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(v label.Voxel, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to depth d; d == 0 means no limit and
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds visit order, hop distances and BFS-tree parents.
type Result struct {
	Order  []label.Voxel
	Depth  map[label.Voxel]int
	Parent map[label.Voxel]label.Voxel
}

// PathTo reconstructs the start→dest path through the BFS tree.
func (r *Result) PathTo(dest label.Voxel) ([]label.Voxel, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("regiongraph: no path to %v", dest)
	}
	path := []label.Voxel{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// BFS walks g from start over face edges in increasing hop distance.
func BFS(g *Graph, start label.Voxel, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	s, ok := g.index[start]
	if !ok {
		return nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}

	n := len(g.vertices)
	res := &Result{
		Order:  make([]label.Voxel, 0, n),
		Depth:  make(map[label.Voxel]int, n),
		Parent: make(map[label.Voxel]label.Voxel, n),
	}
	depth := make([]int, n)
	seen := make([]bool, n)
	queue := make([]int, 1, n)
	queue[0] = s
	seen[s] = true
	res.Depth[start] = 0

	for qi := 0; qi < len(queue); qi++ {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		u := queue[qi]
		uv := g.vertices[u]
		res.Order = append(res.Order, uv)
		if err := o.OnVisit(uv, depth[u]); err != nil {
			return res, fmt.Errorf("regiongraph: OnVisit error at %v: %w", uv, err)
		}
		next := depth[u] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, w := range g.adj[u] {
			if seen[w] {
				continue
			}
			seen[w] = true
			depth[w] = next
			wv := g.vertices[w]
			res.Depth[wv] = next
			res.Parent[wv] = uv
			queue = append(queue, w)
		}
	}

	return res, nil
}

// Components returns the connected components of g, each in BFS order,
// ordered by their first vertex in region discovery order.
func Components(g *Graph) ([][]label.Voxel, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make([]bool, len(g.vertices))
	queue := make([]int, 0, len(g.vertices))
	var comps [][]label.Voxel

	for s := range g.vertices {
		if seen[s] {
			continue
		}
		queue = append(queue[:0], s)
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, w := range g.adj[queue[qi]] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comp := make([]label.Voxel, len(queue))
		for k, i := range queue {
			comp[k] = g.vertices[i]
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

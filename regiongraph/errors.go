package regiongraph

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("regiongraph: graph is nil")
	// ErrVertexNotFound indicates an operation referenced a voxel outside the graph.
	ErrVertexNotFound = errors.New("regiongraph: vertex not found")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("regiongraph: invalid option supplied")
)

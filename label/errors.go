package label

import "errors"

var (
	// ErrNilVolume indicates a nil volume was passed to Label.
	ErrNilVolume = errors.New("label: volume is nil")
	// ErrEmptyTargets indicates the target set holds no values.
	ErrEmptyTargets = errors.New("label: target set is empty")
	// ErrZeroTarget indicates 0 was requested as a target; 0 is the padding value.
	ErrZeroTarget = errors.New("label: 0 cannot be a target value")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("label: invalid option supplied")
)

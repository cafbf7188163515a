package boxel

import "errors"

var (
	// ErrEmpty indicates Build was given no points.
	ErrEmpty = errors.New("boxel: no points to index")
	// ErrBadOptions indicates a non-positive Side, Cells or SearchRadius.
	ErrBadOptions = errors.New("boxel: side, cells and search radius must be positive")
	// ErrOutOfDomain indicates a point outside the configured grid cube.
	ErrOutOfDomain = errors.New("boxel: point outside grid domain")
	// ErrInvariant indicates a link precondition was violated.
	ErrInvariant = errors.New("boxel: link invariant violated")
)

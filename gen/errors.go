package gen

import (
	"errors"
	"fmt"
)

// MaxCoordinate is the largest absolute block coordinate a query may cover.
// It matches the position of the world border.
const MaxCoordinate = 30_000_000

var (
	// ErrUnsupportedConfiguration is returned by New when no generation
	// algorithm is known for the version and dimension requested.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
	// ErrOutOfDomain is matched by every *OutOfDomainError.
	ErrOutOfDomain = errors.New("coordinate out of domain")
	// ErrInvalidRange is returned for a map query with an unknown scale or
	// an empty window.
	ErrInvalidRange = errors.New("invalid range")
)

// OutOfDomainError is returned for a query covering block coordinates beyond
// MaxCoordinate. X and Z hold the offending block coordinate.
type OutOfDomainError struct {
	X, Z int64
}

// Error ...
func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("block %d, %d lies outside the world border of %d", e.X, e.Z, MaxCoordinate)
}

// Unwrap ...
func (e *OutOfDomainError) Unwrap() error {
	return ErrOutOfDomain
}

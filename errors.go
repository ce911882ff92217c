package traversal

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every error returned from Next on an exhausted iterator.
var ErrOutOfBounds = errors.New("index out of bounds")

// OutOfBoundsError reports a delivery attempt past the last element.
type OutOfBoundsError struct {
	Index int
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("indexed value iterator: index %v out of bounds %v", e.Index, e.Size)
}

// Is returns true for ErrOutOfBounds
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

func outOfBounds(index, size int) error {
	return &OutOfBoundsError{Index: index, Size: size}
}

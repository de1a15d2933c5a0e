package planemesh

import (
	"errors"
	"fmt"
)

// Generator errors, wrapped by DimensionError.
var (
	ErrInvalidDimension = errors.New("invalid plane dimension")
	ErrIndexRange       = errors.New("index range exceeded")
)

// DimensionError reports generator arguments that cannot produce a valid mesh.
// Err is ErrInvalidDimension or ErrIndexRange.
type DimensionError struct {
	SideLength   float32
	SegmentCount int
	Err          error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("planemesh: side length %g, segment count %d: %v", e.SideLength, e.SegmentCount, e.Err)
}

func (e *DimensionError) Unwrap() error {
	return e.Err
}

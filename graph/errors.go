package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidNodeRange indicates the caller's declared NNodes upper
// bound is smaller than the largest node ID actually observed.
var ErrInvalidNodeRange = errors.New("graph: n_nodes is smaller than the largest node id observed")

// ErrCapacityExceeded indicates the estimated allocation for the dense
// interned node space exceeds the configured hard memory limit.
var ErrCapacityExceeded = errors.New("graph: estimated allocation exceeds the configured hard memory limit")

// InvalidNodeIDError carries the offending node ID and its position so
// a caller can report precisely which edge was malformed. NodeId must
// be an unsigned, non-zero integer (spec §3).
type InvalidNodeIDError struct {
	EdgeIndex int
	ID        uint64
}

func (e *InvalidNodeIDError) Error() string {
	return fmt.Sprintf("graph: invalid node id %d at edge index %d (ids must be >= 1)", e.ID, e.EdgeIndex)
}

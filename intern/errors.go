package intern

import "errors"

// ErrInvalidNodeID indicates a node ID of zero was presented. NodeIds
// are unsigned 64-bit integers ≥ 1; zero is reserved and rejected
// before interning begins.
var ErrInvalidNodeID = errors.New("intern: node id must be >= 1, got 0")

// ErrCapacityExceeded indicates interning one more distinct ID would
// exceed the index capacity this Interner was constructed with.
var ErrCapacityExceeded = errors.New("intern: distinct node count exceeds index capacity")

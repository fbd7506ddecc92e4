// Package intern remaps arbitrary, sparse 64-bit node identifiers to
// dense [0,N) indices during a single pass over an edge list, and keeps
// the inverse mapping for result translation.
//
// What
//
//   - Interner.Intern(id) returns the existing index if id has been
//     seen before, otherwise assigns the next free index (the current
//     length of the inverse table) and records both directions.
//   - The forward map is an open-addressing table keyed by the 64-bit
//     ID, mixed through xxhash so that dense, sequential IDs (the
//     common case for synthetic or already-dense node spaces) do not
//     collide pathologically against a power-of-two table size the way
//     an identity hash would.
//
// Why
//
//   - The engine's memory budget is O(N), not O(max node ID); without
//     interning, a single sparse edge like (22361810781, 50000000002)
//     would force an allocation sized to the largest ID instead of the
//     two or three distinct nodes actually present.
//
// Policy
//
//   - Indices are assigned in first-appearance order while scanning the
//     edge list, not in numeric order of the external ID. This
//     decouples throughput from input sortedness; callers that need a
//     canonical, reproducible component numbering get it from the
//     label package's compressed mode, not from raw interned indices.
//
// Complexity
//
//   - Intern: O(1) expected amortized per call.
//   - Size, Inverse: O(1).
//
// Errors
//
//	ErrInvalidNodeID  — id == 0 (spec: NodeId is unsigned, ≥ 1).
//	ErrCapacityExceeded — interning would exceed the configured index
//	capacity (checked before the caller's DSU allocation would wrap).
package intern

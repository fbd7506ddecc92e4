// Package graph is the public surface of the connectivity engine: given
// an edge list over a possibly sparse 64-bit node-ID space, it assigns
// each node and each edge to its connected component.
//
// What
//
//   - FindConnectedComponents returns per-node labels, component sizes,
//     and K (the component count) — the "summary" packaging.
//   - EdgeComponents returns a per-edge label vector directly, without
//     requiring the caller to scatter labels back onto edges themselves
//     — the "combined" packaging, and the primary per-edge join
//     primitive.
//   - AreConnected answers same-component queries over the union of an
//     edge list and a query list.
//   - DegreeStats and ShortestPath are peripheral operations that share
//     this package's graph representation but are not the focus of the
//     engine; they carry a one-line contract each (see their doc
//     comments) rather than a full algorithm surface.
//
// Why
//
//   - This package wires together dsu, intern, and label: intern maps
//     the caller's arbitrary IDs to a dense [0,N) space, dsu tracks
//     components over that space, and label packages the result back
//     into the caller's ID space.
//
// Memory safety
//
//   - Before allocating the DSU, the engine estimates peak bytes as
//     a fixed 12*N bytes for N distinct nodes and always
//     sizes the allocation off the dense interned N, never off a
//     caller-supplied n_nodes — n_nodes is validation-only (see
//     Option, WithNNodes). If the estimate exceeds HardLimitBytes
//     (default 32 GiB), the call fails with ErrCapacityExceeded before
//     any large allocation happens. Crossing a lower advisory
//     threshold (default 8 GiB) invokes OnAdvisory once, if set, and
//     then proceeds.
//
// Errors
//
//	*InvalidNodeIDError, ErrInvalidNodeRange, ErrCapacityExceeded.
package graph

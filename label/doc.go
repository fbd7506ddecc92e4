// Package label consumes a finalized dsu.DSU together with the interned
// edge endpoints that produced it, and produces per-node and per-edge
// component labels.
//
// What
//
//   - Compute scans nodes 0..N-1 in ascending order, calling Find on
//     each (further flattening the forest), and assigns labels:
//     compressed mode assigns a dense [1,K] label in order of first
//     encounter of each root; uncompressed mode uses the raw root
//     index as an opaque ComponentId.
//   - Per-edge labels are emitted by Compute itself, in one walk over
//     the recorded edge endpoint arrays after the node scan, so callers
//     never need a follow-up scatter/gather in their own language
//     (spec §4.3, §9).
//
// Guarantees
//
//   - Compressed labelling is a pure function of the DSU's state at
//     labelling time and the 0..N-1 scan order: given the same inputs
//     interned in the same order, it reproduces bit-for-bit across
//     runs and platforms.
//   - sum(Sizes) == N always; max(NodeLabel) == K in compressed mode.
//
// Complexity: O(N·α(N) + E).
package label

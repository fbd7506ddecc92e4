// Package dsu implements a disjoint-set forest (union–find) over a dense
// [0,N) index space.
//
// What
//
//   - DSU maintains an equivalence relation on [0,N) under Union(a,b),
//     with Find(x) and Same(a,b) queries.
//   - Union is by rank; Find performs path compression using an iterative
//     two-pass walk, never recursion, so it cannot stack-overflow at any N.
//
// Why
//
//   - This is the leaf-most primitive of the connectivity engine: every
//     higher package (label, graph, entityres) builds on exactly this
//     structure and nothing else for tracking components.
//
// Complexity
//
//   - New(n):     O(n) time, O(n) space.
//   - Find(x):    O(α(n)) amortized.
//   - Union(a,b): O(α(n)) amortized.
//   - Same(a,b):  O(α(n)) amortized.
//
// Errors
//
// DSU performs no bounds checking of its own: an out-of-range index
// panics with Go's runtime slice-index error. It is a programmer error
// in the caller (intern and label are responsible for guaranteeing
// x ∈ [0,N)), not a reportable DSU failure.
package dsu

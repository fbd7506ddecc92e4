// Package conex is a high-throughput connectivity engine: given an
// edge list over a possibly sparse 64-bit node-ID space, it assigns
// every node and edge to a connected component, and answers
// same-component queries — plus an entity-resolution driver that
// reuses the same machinery to group records sharing a value across a
// chosen set of columns.
//
// Under the hood, everything is organized under a handful of
// subpackages:
//
//	dsu/       — disjoint-set forest: union(a,b), find(x), same(a,b)
//	intern/    — maps arbitrary node IDs to dense [0,N) indices
//	label/     — turns a finalized dsu into node/edge component labels
//	graph/     — public connectivity surface: FindConnectedComponents,
//	             EdgeComponents, AreConnected, plus DegreeStats and
//	             ShortestPath as peripheral operations
//	entityres/ — GroupID: record grouping over shared column values
//
// Quick example, two disjoint triangles:
//
//	result, err := graph.FindConnectedComponents([]graph.Edge{
//		{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1},
//		{U: 10, V: 20}, {U: 20, V: 30}, {U: 30, V: 10},
//	})
//	// result.K == 2, result.Sizes == []int{3, 3}
//
// See each subpackage's doc comment for its full contract.
package conex

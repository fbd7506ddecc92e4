package label

import "github.com/katalvlaran/conex/dsu"

// Compute produces node and edge labels from a finalized DSU.
//
// edgeU and edgeV are the interned endpoints of every edge presented to
// the union step, in the same order they were unioned, i.e.
// edgeU[e]/edgeV[e] are node i's dense indices for edge e. They must be
// the same length.
//
// When compress is true, ComponentId in NodeLabel is a dense [1,K]
// label assigned in order of first encounter while scanning nodes
// 0..N-1 — this is the only labelling that is reproducible across runs
// (spec §4.3, §9). When compress is false, ComponentId is the raw root
// index (zero-based) and is meaningful only within this call.
func Compute(d *dsu.DSU, edgeU, edgeV []uint64, compress bool) Labelling {
	n := d.Len()
	nodeLabel := make([]uint64, n)
	denseLabelOfRoot := make([]int, n) // 0 == unassigned; else 1-based dense label
	var sizes []int

	next := 0
	for i := 0; i < n; i++ {
		root := d.Find(uint64(i))
		if denseLabelOfRoot[root] == 0 {
			next++
			denseLabelOfRoot[root] = next
			sizes = append(sizes, 0)
		}
		dense := denseLabelOfRoot[root]
		sizes[dense-1]++

		if compress {
			nodeLabel[i] = uint64(dense)
		} else {
			nodeLabel[i] = root
		}
	}

	edgeFrom := make([]uint64, len(edgeU))
	edgeTo := make([]uint64, len(edgeV))
	for e := range edgeU {
		edgeFrom[e] = nodeLabel[edgeU[e]]
		edgeTo[e] = nodeLabel[edgeV[e]]
	}

	return Labelling{
		NodeLabel:     nodeLabel,
		EdgeFromLabel: edgeFrom,
		EdgeToLabel:   edgeTo,
		Sizes:         sizes,
		K:             next,
	}
}

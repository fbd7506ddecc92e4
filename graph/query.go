package graph

import (
	"github.com/katalvlaran/conex/dsu"
	"github.com/katalvlaran/conex/intern"
)

// AreConnected builds the connectivity structure over the union of IDs
// appearing in edges and queries, then reports, for every query (a,b),
// whether a and b share a component. A query endpoint that never
// appears in edges is treated as its own singleton component, so it is
// connected only to itself (spec §4.4).
func AreConnected(edges []Edge, queries []Edge, opts ...Option) ([]bool, error) {
	o := resolveOptions(opts)

	n := intern.New((len(edges) + len(queries)) * 2)
	var maxID uint64

	internEndpoint := func(edgeIdx int, id uint64) (uint64, error) {
		idx, err := n.Intern(id)
		if err != nil {
			return 0, invalidNodeErr(edgeIdx, id, err)
		}
		if id > maxID {
			maxID = id
		}

		return idx, nil
	}

	edgeU := make([]uint64, len(edges))
	edgeV := make([]uint64, len(edges))
	for i, e := range edges {
		u, err := internEndpoint(i, e.U)
		if err != nil {
			return nil, err
		}
		v, err := internEndpoint(i, e.V)
		if err != nil {
			return nil, err
		}
		edgeU[i], edgeV[i] = u, v
	}

	queryU := make([]uint64, len(queries))
	queryV := make([]uint64, len(queries))
	for i, q := range queries {
		u, err := internEndpoint(len(edges)+i, q.U)
		if err != nil {
			return nil, err
		}
		v, err := internEndpoint(len(edges)+i, q.V)
		if err != nil {
			return nil, err
		}
		queryU[i], queryV[i] = u, v
	}

	if o.NNodes != nil && maxID > *o.NNodes {
		return nil, ErrInvalidNodeRange
	}
	if err := checkMemoryBudget(n.Size(), o); err != nil {
		return nil, err
	}

	d := dsu.New(int(n.Size()))
	if o.Parallel {
		parallelUnion(d, edgeU, edgeV)
	} else {
		for i := range edgeU {
			if edgeU[i] == edgeV[i] {
				continue // self-loop: no merge
			}
			d.Union(edgeU[i], edgeV[i])
		}
	}

	result := make([]bool, len(queries))
	for i := range queries {
		result[i] = d.Same(queryU[i], queryV[i])
	}

	return result, nil
}

package graph

import (
	"fmt"

	"github.com/katalvlaran/conex/dsu"
	"github.com/katalvlaran/conex/intern"
	"github.com/katalvlaran/conex/label"
)

// computation holds everything produced by run, so EdgeComponents and
// FindConnectedComponents can share one validation/interning/union
// pass without duplicating it.
type computation struct {
	interner *intern.Interner
	labels   label.Labelling
}

// run validates edges, interns their endpoints, builds the DSU, and
// labels it. It implements spec §4.4 steps 1-5 (minus the final
// packaging, which each public entry point does for itself).
func run(edges []Edge, opts Options) (computation, error) {
	n := intern.New(len(edges) * 2)
	edgeU := make([]uint64, len(edges))
	edgeV := make([]uint64, len(edges))
	var maxID uint64

	for i, e := range edges {
		u, err := n.Intern(e.U)
		if err != nil {
			return computation{}, invalidNodeErr(i, e.U, err)
		}
		v, err := n.Intern(e.V)
		if err != nil {
			return computation{}, invalidNodeErr(i, e.V, err)
		}
		if e.U > maxID {
			maxID = e.U
		}
		if e.V > maxID {
			maxID = e.V
		}
		edgeU[i] = u
		edgeV[i] = v
	}

	if opts.NNodes != nil && maxID > *opts.NNodes {
		return computation{}, ErrInvalidNodeRange
	}

	nn := n.Size()
	if err := checkMemoryBudget(nn, opts); err != nil {
		return computation{}, err
	}

	d := dsu.New(int(nn))
	if opts.Parallel {
		parallelUnion(d, edgeU, edgeV)
	} else {
		for i := range edgeU {
			if edgeU[i] == edgeV[i] {
				continue // self-loop: accepted, contributes no merge
			}
			d.Union(edgeU[i], edgeV[i])
		}
	}

	l := label.Compute(d, edgeU, edgeV, opts.Compress)

	return computation{interner: n, labels: l}, nil
}

func invalidNodeErr(edgeIndex int, id uint64, cause error) error {
	if cause == intern.ErrInvalidNodeID {
		return &InvalidNodeIDError{EdgeIndex: edgeIndex, ID: id}
	}

	return cause // e.g. intern.ErrCapacityExceeded surfaces as-is
}

// checkMemoryBudget estimates peak allocation bytes from the dense
// interned count (never from opts.NNodes, which is validation-only)
// and enforces the hard limit before any DSU allocation happens.
func checkMemoryBudget(n uint64, opts Options) error {
	estimated := n * bytesPerNode
	if estimated > opts.HardLimitBytes {
		return ErrCapacityExceeded
	}
	if estimated > opts.AdvisoryThresholdBytes && opts.OnAdvisory != nil {
		opts.OnAdvisory(fmt.Sprintf(
			"graph: estimated allocation %d bytes for %d nodes exceeds the advisory threshold of %d bytes; proceeding with the dense interned representation",
			estimated, n, opts.AdvisoryThresholdBytes))
	}

	return nil
}

// FindConnectedComponents assigns every distinct node ID seen in edges
// to a connected component, returning per-node labels, component
// sizes, and the component count K (spec §4.4).
func FindConnectedComponents(edges []Edge, opts ...Option) (Result, error) {
	o := resolveOptions(opts)
	c, err := run(edges, o)
	if err != nil {
		return Result{}, err
	}

	nodeLabel := make(map[uint64]uint64, c.interner.Size())
	for idx := uint64(0); idx < c.interner.Size(); idx++ {
		id, _ := c.interner.Inverse(idx)
		nodeLabel[id] = c.labels.NodeLabel[idx]
	}

	return Result{
		NodeLabel: nodeLabel,
		Sizes:     c.labels.Sizes,
		K:         c.labels.K,
	}, nil
}

package dsu

// Index addresses a node in the dense [0,N) space the DSU was built over.
type Index = uint64

// DSU is a disjoint-set forest over [0,N).
//
// parent[i] == i iff i is a root. rank[root] is an upper bound on the
// height of its subtree and is monotonic under union-by-rank, so it fits
// comfortably in a byte for any N up to 2^64 (spec: rank grows at most
// logarithmically with N).
type DSU struct {
	parent []Index
	rank   []uint8
}

// New allocates a DSU of size n with parent[i] = i and rank[i] = 0 for
// every i in [0,n). Complexity: O(n) time, O(n) space.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]Index, n),
		rank:   make([]uint8, n),
	}
	for i := range d.parent {
		d.parent[i] = Index(i)
	}

	return d
}

// Len returns the size N this DSU was allocated with.
func (d *DSU) Len() int {
	return len(d.parent)
}

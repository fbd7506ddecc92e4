package graph

// DegreeResult holds per-node degree statistics over a graph's edge
// list, keyed by the original node ID.
type DegreeResult struct {
	// Degree maps each distinct node ID to its incident edge count.
	// A self-loop (U == V) contributes 2 to that node's degree,
	// matching the usual undirected-graph convention.
	Degree map[uint64]uint64

	// MaxDegree is the largest value in Degree, or 0 if there are no
	// nodes at all.
	MaxDegree uint64

	// MinDegree is the smallest value in Degree, or 0 if there are no
	// nodes at all.
	MinDegree uint64
}

// DegreeStats computes the incident edge count of every distinct node
// ID appearing in edges. It is a peripheral operation (spec §1):
// useful alongside connectivity results for sanity-checking input
// shape, but not part of the connectivity engine's core contract, so
// it performs no interning, DSU allocation, or memory-budget check.
func DegreeStats(edges []Edge) DegreeResult {
	degree := make(map[uint64]uint64, len(edges)*2)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
	}

	result := DegreeResult{Degree: degree}
	first := true
	for _, d := range degree {
		if first {
			result.MaxDegree, result.MinDegree = d, d
			first = false

			continue
		}
		if d > result.MaxDegree {
			result.MaxDegree = d
		}
		if d < result.MinDegree {
			result.MinDegree = d
		}
	}

	return result
}

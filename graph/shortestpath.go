package graph

// ShortestPath returns the fewest-edges path from source to target over
// the unweighted, undirected graph described by edges, and whether a
// path exists. It is a peripheral operation (spec §1): it shares this
// package's edge representation but is not part of the connectivity
// engine's focus, so it carries a one-line contract — unweighted BFS,
// nothing more — rather than Dijkstra/A*/weighted variants.
//
// If source or target never appears in edges, ok is false. If
// source == target and that node appears in edges (a self-loop is
// enough), the path is the single-element [source] and ok is true.
//
// Complexity: O(N + E).
func ShortestPath(edges []Edge, source, target uint64) (path []uint64, ok bool, err error) {
	adjacency, index := buildAdjacency(edges)

	si, sOK := index[source]
	ti, tOK := index[target]
	if !sOK || !tOK {
		return nil, false, nil
	}

	if si == ti {
		return []uint64{source}, true, nil
	}

	n := len(adjacency)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, n)
	visited[si] = true

	queue := []int{si}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur == ti {
			break
		}
		for _, nb := range adjacency[cur] {
			if !visited[nb] {
				visited[nb] = true
				parent[nb] = cur
				queue = append(queue, nb)
			}
		}
	}

	if !visited[ti] {
		return nil, false, nil
	}

	var reversed []int
	for cur := ti; cur != -1; cur = parent[cur] {
		reversed = append(reversed, cur)
	}

	inverse := make([]uint64, n)
	for id, idx := range index {
		inverse[idx] = id
	}

	path = make([]uint64, len(reversed))
	for i, idx := range reversed {
		path[len(reversed)-1-i] = inverse[idx]
	}

	return path, true, nil
}

// buildAdjacency interns every distinct node ID in edges to a dense
// index and builds an adjacency list over that index space, skipping
// self-loops (they contribute no edge for traversal purposes).
func buildAdjacency(edges []Edge) (adjacency [][]int, index map[uint64]int) {
	index = make(map[uint64]int, len(edges)*2)
	next := func(id uint64) int {
		if idx, seen := index[id]; seen {
			return idx
		}
		idx := len(index)
		index[id] = idx

		return idx
	}

	uIdx := make([]int, len(edges))
	vIdx := make([]int, len(edges))
	for i, e := range edges {
		uIdx[i] = next(e.U)
		vIdx[i] = next(e.V)
	}

	adjacency = make([][]int, len(index))
	for i := range edges {
		if uIdx[i] == vIdx[i] {
			continue
		}
		adjacency[uIdx[i]] = append(adjacency[uIdx[i]], vIdx[i])
		adjacency[vIdx[i]] = append(adjacency[vIdx[i]], uIdx[i])
	}

	return adjacency, index
}

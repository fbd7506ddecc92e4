package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/conex/graph"
)

// genEdges draws a random small edge list over a bounded node-ID
// universe, biasing toward repeats so the generated graphs actually
// exercise merging rather than producing all-singleton partitions.
func genEdges(t *rapid.T) []graph.Edge {
	universe := rapid.IntRange(1, 12).Draw(t, "universe")
	count := rapid.IntRange(0, 30).Draw(t, "count")
	edges := make([]graph.Edge, count)
	for i := range edges {
		edges[i] = graph.Edge{
			U: uint64(rapid.IntRange(1, universe).Draw(t, "u")),
			V: uint64(rapid.IntRange(1, universe).Draw(t, "v")),
		}
	}

	return edges
}

// TestProperty_CompressedLabelsAreDenseOneToK checks that compressed
// labels always land in [1,K] and every label in that range is used by
// at least one node (spec §4.3: compressed labelling is dense).
func TestProperty_CompressedLabelsAreDenseOneToK(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		result, err := graph.FindConnectedComponents(edges)
		require.NoError(t, err)

		seen := make(map[uint64]bool, result.K)
		for _, label := range result.NodeLabel {
			assert.GreaterOrEqual(t, label, uint64(1))
			assert.LessOrEqual(t, label, uint64(result.K))
			seen[label] = true
		}
		assert.Len(t, seen, result.K)
	})
}

// TestProperty_SizesSumToNodeCount checks that the sum of component
// sizes always equals the number of distinct nodes observed.
func TestProperty_SizesSumToNodeCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		result, err := graph.FindConnectedComponents(edges)
		require.NoError(t, err)

		sum := 0
		for _, s := range result.Sizes {
			sum += s
		}
		assert.Equal(t, len(result.NodeLabel), sum)
	})
}

// TestProperty_EdgeOrderDoesNotAffectPartition checks that reversing
// the edge list never changes which nodes end up sharing a component
// (spec §5: union result depends only on the multiset of edges).
func TestProperty_EdgeOrderDoesNotAffectPartition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		reversed := make([]graph.Edge, len(edges))
		for i, e := range edges {
			reversed[len(edges)-1-i] = e
		}

		forward, err := graph.FindConnectedComponents(edges)
		require.NoError(t, err)
		backward, err := graph.FindConnectedComponents(reversed)
		require.NoError(t, err)

		assert.Equal(t, forward.K, backward.K)
		for a := range forward.NodeLabel {
			for b := range forward.NodeLabel {
				assert.Equal(t,
					forward.NodeLabel[a] == forward.NodeLabel[b],
					backward.NodeLabel[a] == backward.NodeLabel[b],
				)
			}
		}
	})
}

// TestProperty_DuplicatingEveryEdgeIsANoOp checks idempotency: doubling
// every edge in the list never changes the resulting partition.
func TestProperty_DuplicatingEveryEdgeIsANoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		doubled := make([]graph.Edge, 0, len(edges)*2)
		for _, e := range edges {
			doubled = append(doubled, e, e)
		}

		once, err := graph.FindConnectedComponents(edges)
		require.NoError(t, err)
		twice, err := graph.FindConnectedComponents(doubled)
		require.NoError(t, err)

		assert.Equal(t, once.K, twice.K)
		assert.Equal(t, once.Sizes, twice.Sizes)
	})
}

// TestProperty_AreConnectedHoldsForEveryEdge checks that AreConnected
// reports the two endpoints of every edge as connected, with each edge
// fed back in as its own query.
func TestProperty_AreConnectedHoldsForEveryEdge(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		edges := genEdges(t)
		if len(edges) == 0 {
			return
		}

		connected, err := graph.AreConnected(edges, edges)
		require.NoError(t, err)

		for i := range edges {
			assert.True(t, connected[i])
		}
	})
}

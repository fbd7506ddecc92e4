package label_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/conex/dsu"
	"github.com/katalvlaran/conex/label"
)

// buildThreeComponents mirrors spec scenario S1: edges
// {(0,1),(1,2),(4,5),(7,8),(8,9)} over dense indices 0..9, i.e. three
// edge-connected components {0,1,2}, {4,5}, {7,8,9}, plus the isolated
// indices 3 and 6 as two singleton components.
func buildThreeComponents() (*dsu.DSU, []uint64, []uint64) {
	d := dsu.New(10)
	u := []uint64{0, 1, 4, 7, 8}
	v := []uint64{1, 2, 5, 8, 9}
	for i := range u {
		d.Union(u[i], v[i])
	}

	return d, u, v
}

// TestCompute_CompressedThreeComponents checks K, Sizes and edge
// coherence for the S1 scenario: the three edge-connected components
// and the two isolated indices give K == 5.
func TestCompute_CompressedThreeComponents(t *testing.T) {
	d, u, v := buildThreeComponents()
	l := label.Compute(d, u, v, true)

	assert.Equal(t, 5, l.K)
	sum := 0
	for _, s := range l.Sizes {
		sum += s
	}
	assert.Equal(t, 10, sum) // sum(sizes) == N, including the two isolated indices 3 and 6

	sorted := append([]int(nil), l.Sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	assert.Equal(t, []int{3, 3, 2, 1, 1}, sorted) // {0,1,2}=3 {7,8,9}=3 {4,5}=2 + two singletons 3,6

	assert.Equal(t, l.NodeLabel[0], l.NodeLabel[1])
	assert.Equal(t, l.NodeLabel[1], l.NodeLabel[2])
	assert.Equal(t, l.NodeLabel[4], l.NodeLabel[5])
	assert.Equal(t, l.NodeLabel[7], l.NodeLabel[8])
	assert.Equal(t, l.NodeLabel[8], l.NodeLabel[9])
	assert.NotEqual(t, l.NodeLabel[0], l.NodeLabel[4])
	assert.NotEqual(t, l.NodeLabel[0], l.NodeLabel[7])
}

// TestCompute_EdgeLabelCoherence checks edge_from_label == edge_to_label
// for every edge (spec property #6).
func TestCompute_EdgeLabelCoherence(t *testing.T) {
	d, u, v := buildThreeComponents()
	l := label.Compute(d, u, v, true)
	for i := range l.EdgeFromLabel {
		assert.Equal(t, l.EdgeFromLabel[i], l.EdgeToLabel[i])
	}
}

// TestCompute_UncompressedUsesRootIndex checks uncompressed labels are
// exactly the DSU root index.
func TestCompute_UncompressedUsesRootIndex(t *testing.T) {
	d, u, v := buildThreeComponents()
	l := label.Compute(d, u, v, false)
	for i := 0; i < d.Len(); i++ {
		assert.EqualValues(t, d.Find(uint64(i)), l.NodeLabel[i])
	}
}

// TestCompute_EmptyDSU covers N=0.
func TestCompute_EmptyDSU(t *testing.T) {
	d := dsu.New(0)
	l := label.Compute(d, nil, nil, true)
	assert.Equal(t, 0, l.K)
	assert.Empty(t, l.Sizes)
	assert.Empty(t, l.NodeLabel)
}

// TestCompute_SelfLoopStillLabelled checks a self-loop edge (u==v,
// never unioned) still receives a valid, equal label on both
// "endpoints" (spec edge case).
func TestCompute_SelfLoopStillLabelled(t *testing.T) {
	d := dsu.New(3)
	// no unions: all three nodes singleton, but edge (1,1) is presented.
	l := label.Compute(d, []uint64{1}, []uint64{1}, true)
	assert.Equal(t, l.EdgeFromLabel[0], l.EdgeToLabel[0])
	assert.Equal(t, 3, l.K) // 3 singleton components
}

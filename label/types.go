package label

// Labelling holds the output of Compute.
//
//   - NodeLabel[i] is the component label of node i, for i in [0,N).
//   - EdgeFromLabel[e]/EdgeToLabel[e] are the labels of edge e's two
//     endpoints; they are equal for every e by construction, since both
//     endpoints were unioned together before labelling ran.
//   - Sizes[k-1] (compressed) or Sizes indexed by discovery order
//     (uncompressed) holds the size of component k; sum(Sizes) == N.
//   - K is the number of distinct components.
type Labelling struct {
	NodeLabel     []uint64
	EdgeFromLabel []uint64
	EdgeToLabel   []uint64
	Sizes         []int
	K             int
}

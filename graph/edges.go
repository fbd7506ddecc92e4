package graph

// EdgeComponents returns the component label of every edge in edges,
// in input order: result[e] is the label both endpoints of edges[e]
// share (edge_from_label == edge_to_label by construction, spec §4.3).
// This is the primary per-edge join primitive — callers never need a
// follow-up scatter of node labels back onto edges in their own
// language (spec §4.4, §9).
func EdgeComponents(edges []Edge, opts ...Option) ([]uint64, error) {
	o := resolveOptions(opts)
	c, err := run(edges, o)
	if err != nil {
		return nil, err
	}

	return c.labels.EdgeFromLabel, nil
}

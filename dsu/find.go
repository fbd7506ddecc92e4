package dsu

// Find returns the root of x's tree, compressing the path from x to the
// root along the way: every node visited is re-parented directly to the
// root before Find returns.
//
// The walk is the iterative two-pass form (locate the root, then
// re-parent each visited node to it) rather than the recursive
// one-pass form, so it cannot overflow the goroutine stack even when
// N approaches 2^31 and the uncompressed forest is a long chain.
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x Index) Index {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// second pass: re-parent every node on the path directly to root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// Same reports whether a and b are in the same component.
// Complexity: O(α(n)) amortized.
func (d *DSU) Same(a, b Index) bool {
	return d.Find(a) == d.Find(b)
}

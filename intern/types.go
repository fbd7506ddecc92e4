package intern

import "math"

// Option configures an Interner at construction time.
type Option func(*Interner)

// WithMaxNodes caps the number of distinct IDs this Interner will
// accept before returning ErrCapacityExceeded. The default is
// effectively unlimited (math.MaxUint64), matching the 64-bit internal
// index width this engine always allocates (see dsu.Index); callers
// that want to simulate a narrower 32-bit build's capacity ceiling
// (spec §4.2: "N >= 2^32 on a 32-bit Index build") pass
// WithMaxNodes(1<<32 - 1) explicitly.
func WithMaxNodes(max uint64) Option {
	return func(n *Interner) {
		n.maxNodes = max
	}
}

// Interner maps arbitrary non-zero uint64 node IDs to dense [0,N)
// indices, preserving the inverse mapping for result translation.
//
// table is an open-addressing hash set keyed by the external ID, with
// linear probing; slot values are indices into inverse. An empty slot
// is marked by the sentinel key 0 (a valid NodeId is never 0), so no
// separate "occupied" bitmap is needed.
type Interner struct {
	keys    []uint64 // 0 == empty slot
	indices []uint64 // indices[i] is the dense index assigned to keys[i]
	inverse []uint64 // inverse[idx] is the external id for dense index idx
	count   uint64   // number of occupied slots == len(inverse)

	maxNodes uint64
}

// New constructs an empty Interner. hint is an optional size hint for
// the expected distinct-ID count, used to presize the table and avoid
// rehashing during the common case of a single streaming pass; a
// non-positive hint is treated as "no hint."
func New(hint int, opts ...Option) *Interner {
	n := &Interner{
		maxNodes: math.MaxUint64,
	}
	for _, opt := range opts {
		opt(n)
	}

	capHint := 16
	inverseCap := 0
	if hint > 0 {
		capHint = nextPowerOfTwo(hint * 2) // keep load factor <= 0.5
		inverseCap = hint
	}
	n.keys = make([]uint64, capHint)
	n.indices = make([]uint64, capHint)
	n.inverse = make([]uint64, 0, inverseCap)

	return n
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

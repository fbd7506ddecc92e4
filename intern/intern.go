package intern

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// mix hashes a uint64 node ID through xxhash rather than using the ID
// directly as a bucket index. A trivial identity hash is insufficient
// here: node IDs are frequently dense, sequential numbers, which
// collide badly against a power-of-two table size under an identity
// or weak multiplicative hash. xxhash gives a well-distributed 64-bit
// digest from the ID's 8-byte little-endian encoding at negligible
// per-call cost.
func mix(id uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)

	return xxhash.Sum64(buf[:])
}

// Intern returns the dense index assigned to id, assigning a new one
// (the current length of the inverse table) on first sight.
//
// Complexity: O(1) expected amortized.
func (n *Interner) Intern(id uint64) (uint64, error) {
	if id == 0 {
		return 0, ErrInvalidNodeID
	}

	mask := uint64(len(n.keys) - 1)
	slot := mix(id) & mask
	for n.keys[slot] != 0 {
		if n.keys[slot] == id {
			return n.indices[slot], nil
		}
		slot = (slot + 1) & mask
	}

	if n.count >= n.maxNodes {
		return 0, ErrCapacityExceeded
	}

	if uint64(len(n.keys))*2 <= (n.count+1)*3 { // load factor > 2/3: grow
		n.grow()
		return n.Intern(id) // re-probe against the resized table
	}

	idx := n.count
	n.keys[slot] = id
	n.indices[slot] = idx
	n.inverse = append(n.inverse, id)
	n.count++

	return idx, nil
}

// grow doubles the table size and reinserts every occupied slot.
func (n *Interner) grow() {
	oldKeys, oldIdx := n.keys, n.indices
	n.keys = make([]uint64, len(oldKeys)*2)
	n.indices = make([]uint64, len(oldIdx)*2)
	mask := uint64(len(n.keys) - 1)

	for i, k := range oldKeys {
		if k == 0 {
			continue
		}
		slot := mix(k) & mask
		for n.keys[slot] != 0 {
			slot = (slot + 1) & mask
		}
		n.keys[slot] = k
		n.indices[slot] = oldIdx[i]
	}
}

// Size returns N, the number of distinct IDs interned so far.
func (n *Interner) Size() uint64 {
	return n.count
}

// Inverse returns the external ID assigned to dense index i, and
// whether i was a valid, previously-assigned index.
func (n *Interner) Inverse(i uint64) (uint64, bool) {
	if i >= n.count {
		return 0, false
	}

	return n.inverse[i], true
}

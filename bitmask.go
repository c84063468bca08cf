package ecc

import "math/bits"

// BitMask is a set of component type bits. Bit i set means "has the
// component type with ID i".
type BitMask uint64

// liveBit marks an entity table word as belonging to a live entity. It is
// never part of a component mask.
const liveBit BitMask = 1 << 63

// componentBits covers every bit a component type may be assigned.
const componentBits BitMask = liveBit - 1

// Has reports whether bit id is set.
func (m BitMask) Has(id int) bool {
	if id < 0 || id >= MaxComponentTypes {
		return false
	}
	return m&(1<<uint(id)) != 0
}

// Set returns m with bit id set.
func (m BitMask) Set(id int) BitMask {
	if id < 0 || id >= MaxComponentTypes {
		return m
	}
	return m | 1<<uint(id)
}

// Unset returns m with bit id cleared.
func (m BitMask) Unset(id int) BitMask {
	if id < 0 || id >= MaxComponentTypes {
		return m
	}
	return m &^ (1 << uint(id))
}

// Contains checks if all the bits set in sub are also set in m.
func (m BitMask) Contains(sub BitMask) bool {
	return m&sub == sub
}

// Intersects checks if m has any bits in common with other.
func (m BitMask) Intersects(other BitMask) bool {
	return m&other != 0
}

// Count returns the number of bits set.
func (m BitMask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// IsZero reports whether no bit is set.
func (m BitMask) IsZero() bool {
	return m == 0
}

// Each calls fn with the index of every set bit, lowest first.
func (m BitMask) Each(fn func(id int)) {
	w := uint64(m)
	for w != 0 {
		id := bits.TrailingZeros64(w)
		fn(id)
		w &^= 1 << uint(id)
	}
}

package ecc

import "encoding/binary"

// entityWordSize is the arena footprint of one entity table entry.
const entityWordSize = 8

// Entity identifies a slot in a bucket's entity table. It carries no data;
// the components attached to it are recorded in the table's mask word.
//
// Indices are recycled: once an entity is deleted its index may be handed
// out again by the next CreateEntity.
type Entity uint32

// Index returns the entity table index as an int.
func (e Entity) Index() int {
	return int(e)
}

// entityTable is the arena-backed array of mask words, one per entity slot.
// Bits 0..62 hold the component mask and bit 63 the live flag.
type entityTable struct {
	words []byte
}

func (t entityTable) word(i int) BitMask {
	return BitMask(binary.LittleEndian.Uint64(t.words[i*entityWordSize:]))
}

func (t entityTable) setWord(i int, w BitMask) {
	binary.LittleEndian.PutUint64(t.words[i*entityWordSize:], uint64(w))
}

func (t entityTable) len() int {
	return len(t.words) / entityWordSize
}

package ecc

// Query selects entities by which component types they carry. It is a
// plain pair of masks: building one does no work beyond bit composition,
// and evaluation happens when a caller tests entity masks against it.
type Query struct {
	Include BitMask // types an entity must have
	Exclude BitMask // types an entity must not have
}

// NewQuery returns a query that matches every entity.
func NewQuery() Query {
	return Query{}
}

// Query returns an empty query for the bucket. It is equivalent to NewQuery
// and exists so call sites read b.Query().With(...).
func (b *Bucket) Query() Query {
	return NewQuery()
}

// With returns q requiring ct. A nil ct leaves q unchanged.
func (q Query) With(ct *ComponentType) Query {
	q.Include |= ct.Mask()
	return q
}

// Without returns q rejecting entities that carry ct. A nil ct leaves q
// unchanged.
func (q Query) Without(ct *ComponentType) Query {
	q.Exclude |= ct.Mask()
	return q
}

// WithMask returns q requiring every bit of m.
func (q Query) WithMask(m BitMask) Query {
	q.Include |= m
	return q
}

// WithoutMask returns q rejecting entities that carry any bit of m.
func (q Query) WithoutMask(m BitMask) Query {
	q.Exclude |= m
	return q
}

// Matches reports whether an entity with mask m is selected by q.
func (q Query) Matches(m BitMask) bool {
	return Matches(m, q)
}

// Matches reports whether mask has every bit of q.Include and none of
// q.Exclude.
func Matches(mask BitMask, q Query) bool {
	return mask&q.Include == q.Include && mask&q.Exclude == 0
}

// Each scans the entity table in index order and calls fn for every live
// entity matched by q. Iteration stops early when fn returns false.
//
// fn may add or remove components and delete entities, including the one it
// was called with; entities created during the scan may or may not be
// visited. Nothing is visited once the arena has been destroyed.
func (b *Bucket) Each(q Query, fn func(e Entity) bool) {
	if b.arena.destroyed {
		return
	}
	for i := 0; i < b.entityListEnd; i++ {
		// fn may destroy the arena.
		if b.arena.destroyed {
			return
		}
		w := b.table.word(i)
		if w&liveBit == 0 || !Matches(w&componentBits, q) {
			continue
		}
		if !fn(Entity(i)) {
			return
		}
	}
}

// Collect appends every live entity matched by q to dst and returns the
// extended slice.
func (b *Bucket) Collect(q Query, dst []Entity) []Entity {
	b.Each(q, func(e Entity) bool {
		dst = append(dst, e)
		return true
	})
	return dst
}

// Count returns the number of live entities matched by q.
func (b *Bucket) Count(q Query) int {
	if b.arena.destroyed {
		return 0
	}
	n := 0
	for i := 0; i < b.entityListEnd; i++ {
		w := b.table.word(i)
		if w&liveBit != 0 && Matches(w&componentBits, q) {
			n++
		}
	}
	return n
}

package ecc

import (
	"fmt"
	"math"
)

// Bucket is one ECS instance. It owns the arena it was created in, the
// entity table, the component type registry and the free index queue, and
// is the only object client code talks to.
//
// A Bucket is not safe for concurrent use. All mutation is expected to come
// from one owner, typically the frame loop.
type Bucket struct {
	arena         *Arena
	freeIndexes   *Queue
	events        *EventBus
	resources     *Resources
	registry      componentRegistry
	table         entityTable
	entityCount   int
	entityListEnd int
}

// NewBucket creates a bucket with room for maxEntities entities and the
// canonical 63 component types. See NewBucketWithConfig.
func NewBucket(a *Arena, maxEntities int) (*Bucket, error) {
	cfg := DefaultConfig()
	cfg.MaxEntities = maxEntities
	return NewBucketWithConfig(a, cfg)
}

// NewBucketWithConfig creates a bucket inside a. The entity table is
// allocated from the arena up front; component storage is allocated as
// types are registered.
//
// Parameters:
//   - a: The arena that will back every table of the bucket.
//   - cfg: The fixed capacities of the bucket.
//
// Returns:
//   - The new Bucket.
//   - ErrInvalidConfig if cfg does not validate, ErrDestroyed if the arena
//     is gone, or ErrExhausted if the arena is smaller than
//     cfg.FootprintBytes(). On failure the arena cursor is restored to where
//     it was before the call.
func NewBucketWithConfig(a *Arena, cfg Config) (*Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mark := a.Top()
	words, err := a.Allocate(cfg.TableBytes())
	if err != nil {
		a.rewind(mark)
		return nil, fmt.Errorf("allocate entity table: %w", err)
	}
	// One queue node per entity slot, so recording a freed index never
	// needs the arena to grow.
	if _, err := a.Allocate(cfg.QueueBytes()); err != nil {
		a.rewind(mark)
		return nil, fmt.Errorf("allocate free index pool: %w", err)
	}
	poolEnd := a.Top()
	return &Bucket{
		arena:       a,
		freeIndexes: newPooledQueue(a, poolEnd-cfg.QueueBytes(), poolEnd),
		events:      &EventBus{},
		resources:   &Resources{},
		registry:    componentRegistry{types: make([]*ComponentType, 0, cfg.MaxComponentTypes)},
		table:       entityTable{words: words},
	}, nil
}

// Arena returns the arena backing the bucket.
func (b *Bucket) Arena() *Arena {
	return b.arena
}

// Events returns the bus the bucket publishes lifecycle events on.
func (b *Bucket) Events() *EventBus {
	return b.events
}

// Resources returns the bucket's singleton store.
func (b *Bucket) Resources() *Resources {
	return b.resources
}

// ----------------------------------------
// Entities
// ----------------------------------------

// CreateEntity hands out an entity with an empty mask. Indices freed by
// DeleteEntity are reused first, most recently freed first; otherwise the
// next never-used slot is taken.
//
// Returns:
//   - The new Entity.
//   - ErrExhausted when every slot of the table is live, or ErrDestroyed.
func (b *Bucket) CreateEntity() (Entity, error) {
	if b.arena.destroyed {
		return 0, ErrDestroyed
	}
	index, ok := b.freeIndexes.Pop()
	if !ok {
		if b.entityListEnd >= b.table.len() {
			return 0, ErrExhausted
		}
		index = b.entityListEnd
		b.entityListEnd++
	}
	b.table.setWord(index, liveBit)
	b.entityCount++
	e := Entity(index)
	if b.events.active() {
		Publish(b.events, EntityCreated{Entity: e})
	}
	return e, nil
}

// DeleteEntity clears the entity's mask and makes its index available to
// CreateEntity again. Component slots are left as they are; they become
// unreachable and are zeroed on the next attach. Deleting an index that was
// never handed out, or that is already deleted, does nothing.
func (b *Bucket) DeleteEntity(e Entity) {
	index, ok := b.liveIndex(int64(e))
	if !ok {
		return
	}
	// At most MaxEntities indices are free at once and the reserved node
	// pool holds that many, so Push cannot fail here.
	_ = b.freeIndexes.Push(index)
	b.table.setWord(index, 0)
	b.entityCount--
	if b.events.active() {
		Publish(b.events, EntityDeleted{Entity: e})
	}
}

// IsAlive reports whether e is a live entity of this bucket.
func (b *Bucket) IsAlive(e Entity) bool {
	_, ok := b.liveIndex(int64(e))
	return ok
}

// Mask returns the component mask of e, or 0 if e is not live.
func (b *Bucket) Mask(e Entity) BitMask {
	index, ok := b.liveIndex(int64(e))
	if !ok {
		return 0
	}
	return b.table.word(index) & componentBits
}

// EntityCount returns the number of live entities.
func (b *Bucket) EntityCount() int {
	return b.entityCount
}

// EntityListEnd returns the high-water mark of slots ever handed out.
func (b *Bucket) EntityListEnd() int {
	return b.entityListEnd
}

// MaxEntities returns the fixed capacity of the entity table.
func (b *Bucket) MaxEntities() int {
	return b.table.len()
}

// liveIndex validates a raw index against [0, entityListEnd) and the live
// flag. Taking an int64 lets both the unsigned Entity and the signed ById
// indices be checked without wraparound.
func (b *Bucket) liveIndex(i int64) (int, bool) {
	if b.arena.destroyed || i < 0 || i >= int64(b.entityListEnd) {
		return 0, false
	}
	index := int(i)
	if b.table.word(index)&liveBit == 0 {
		return 0, false
	}
	return index, true
}

// ----------------------------------------
// Component types
// ----------------------------------------

// RegisterComponentType returns the type registered under name, creating it
// if needed. A new type takes the next free bit and gets one elementSize
// slot per entity table entry, allocated from the arena.
//
// Parameters:
//   - elementSize: The size of one component in bytes. Ignored when name is
//     already registered.
//   - name: The stable name identifying the type.
//
// Returns:
//   - The registered ComponentType.
//   - ErrInvalidSize, ErrRegistryFull, ErrExhausted or ErrDestroyed. The
//     registry is unchanged on error.
func (b *Bucket) RegisterComponentType(elementSize int, name string) (*ComponentType, error) {
	if ct := b.registry.lookup(name); ct != nil {
		return ct, nil
	}
	if b.arena.destroyed {
		return nil, ErrDestroyed
	}
	if elementSize < 0 {
		return nil, fmt.Errorf("%w: component %q element size %d", ErrInvalidSize, name, elementSize)
	}
	if b.registry.full() {
		return nil, fmt.Errorf("%w: cannot register component %q, limit is %d", ErrRegistryFull, name, cap(b.registry.types))
	}
	n := b.table.len()
	if elementSize > 0 && n > math.MaxInt/elementSize {
		return nil, fmt.Errorf("%w: component %q storage overflows", ErrExhausted, name)
	}
	storage := []byte{}
	if elementSize > 0 {
		var err error
		storage, err = b.arena.Allocate(n * elementSize)
		if err != nil {
			return nil, fmt.Errorf("allocate storage for component %q: %w", name, err)
		}
	}
	id := len(b.registry.types)
	ct := &ComponentType{
		name:        name,
		storage:     storage,
		id:          id,
		elementSize: elementSize,
		mask:        1 << uint(id),
	}
	b.registry.types = append(b.registry.types, ct)
	return ct, nil
}

// ComponentType returns the type registered under name.
func (b *Bucket) ComponentType(name string) (*ComponentType, bool) {
	ct := b.registry.lookup(name)
	return ct, ct != nil
}

// ComponentTypes returns the registered types in ID order. The slice is
// owned by the bucket and must not be modified.
func (b *Bucket) ComponentTypes() []*ComponentType {
	return b.registry.types
}

// ComponentTypeCount returns the number of registered types.
func (b *Bucket) ComponentTypeCount() int {
	return len(b.registry.types)
}

// ----------------------------------------
// Components by name
// ----------------------------------------

// AddComponent attaches the component named name to e, registering the type
// with elementSize on first use, and returns its zero-filled slot for the
// caller to populate. Attaching a type e already has resets its slot.
func (b *Bucket) AddComponent(e Entity, elementSize int, name string) ([]byte, error) {
	if !b.IsAlive(e) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, e)
	}
	ct, err := b.RegisterComponentType(elementSize, name)
	if err != nil {
		return nil, err
	}
	return b.AddComponentByID(e.Index(), ct)
}

// GetComponent returns the slot of the component named name on e. ok is
// false if no such type is registered, e is not live, or e lacks it.
func (b *Bucket) GetComponent(e Entity, name string) (slot []byte, ok bool) {
	ct := b.registry.lookup(name)
	if ct == nil {
		return nil, false
	}
	return b.GetComponentByID(e.Index(), ct)
}

// RemoveComponent detaches the component named name from e. Removing a
// component e does not have is a no-op.
func (b *Bucket) RemoveComponent(e Entity, name string) {
	ct := b.registry.lookup(name)
	if ct == nil {
		return
	}
	b.RemoveComponentByID(e.Index(), ct)
}

// ----------------------------------------
// Components by handle
// ----------------------------------------

// AddComponentByID is the handle-based form of AddComponent. The mask
// update is additive: bits of other types already on the entity are kept.
//
// Returns:
//   - The writable, zero-filled slot.
//   - ErrUnknownComponent if ct is nil, or ErrInvalidIndex if index is not
//     a live entity.
func (b *Bucket) AddComponentByID(index int, ct *ComponentType) ([]byte, error) {
	if ct == nil {
		return nil, ErrUnknownComponent
	}
	i, ok := b.liveIndex(int64(index))
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	slot := ct.slot(i)
	clear(slot)
	b.table.setWord(i, b.table.word(i)|ct.mask)
	if b.events.active() {
		Publish(b.events, ComponentAdded{Entity: Entity(i), Type: ct})
	}
	return slot, nil
}

// GetComponentByID is the handle-based form of GetComponent. A nil ct is
// reported as absent.
func (b *Bucket) GetComponentByID(index int, ct *ComponentType) (slot []byte, ok bool) {
	if ct == nil {
		return nil, false
	}
	i, ok := b.liveIndex(int64(index))
	if !ok || b.table.word(i)&ct.mask == 0 {
		return nil, false
	}
	return ct.slot(i), true
}

// RemoveComponentByID is the handle-based form of RemoveComponent. The
// slot is zeroed along with the bit.
func (b *Bucket) RemoveComponentByID(index int, ct *ComponentType) {
	if ct == nil {
		return
	}
	i, ok := b.liveIndex(int64(index))
	if !ok {
		return
	}
	w := b.table.word(i)
	if w&ct.mask == 0 {
		return
	}
	b.table.setWord(i, w&^ct.mask)
	clear(ct.slot(i))
	if b.events.active() {
		Publish(b.events, ComponentRemoved{Entity: Entity(i), Type: ct})
	}
}

// HasComponent reports whether e currently carries ct.
func (b *Bucket) HasComponent(e Entity, ct *ComponentType) bool {
	return b.Mask(e)&ct.Mask() != 0
}

// ----------------------------------------
// Stats
// ----------------------------------------

// Stats returns a snapshot of the bucket's occupancy.
func (b *Bucket) Stats() BucketStats {
	return BucketStats{
		EntityCount:       b.entityCount,
		EntityListEnd:     b.entityListEnd,
		MaxEntities:       b.table.len(),
		FreeIndexes:       b.freeIndexes.Len(),
		ComponentTypes:    len(b.registry.types),
		MaxComponentTypes: cap(b.registry.types),
		Arena:             b.arena.Metrics(),
	}
}

// BucketStats contains occupancy information about a bucket.
type BucketStats struct {
	EntityCount       int          `json:"entity_count"`
	EntityListEnd     int          `json:"entity_list_end"`
	MaxEntities       int          `json:"max_entities"`
	FreeIndexes       int          `json:"free_indexes"`
	ComponentTypes    int          `json:"component_types"`
	MaxComponentTypes int          `json:"max_component_types"`
	Arena             ArenaMetrics `json:"arena"`
}

package ecc

// ComponentType describes one kind of attachable data. It is created by a
// bucket the first time a component name is seen and lives as long as the
// bucket's arena. The per-entity storage is one dense arena region with an
// ElementSize slot for every entity table index.
type ComponentType struct {
	name        string
	storage     []byte
	id          int
	elementSize int
	mask        BitMask
}

// ID returns the registration order of the type, which is also its bit
// position in entity masks. It is -1 for a nil type.
func (ct *ComponentType) ID() int {
	if ct == nil {
		return -1
	}
	return ct.id
}

// Mask returns the single bit assigned to this type, or 0 for a nil type.
func (ct *ComponentType) Mask() BitMask {
	if ct == nil {
		return 0
	}
	return ct.mask
}

// Name returns the name the type was registered under.
func (ct *ComponentType) Name() string {
	if ct == nil {
		return ""
	}
	return ct.name
}

// ElementSize returns the size in bytes of one component slot.
func (ct *ComponentType) ElementSize() int {
	if ct == nil {
		return 0
	}
	return ct.elementSize
}

// slot returns the storage of entity index i. The slice capacity is clipped
// so writes cannot reach the neighbouring slot.
func (ct *ComponentType) slot(i int) []byte {
	off := i * ct.elementSize
	end := off + ct.elementSize
	return ct.storage[off:end:end]
}

// componentRegistry is the fixed-capacity table of registered types.
// Lookups by name are a linear scan: there are at most MaxComponentTypes
// entries and the scan keeps registration order visible.
type componentRegistry struct {
	types []*ComponentType // len = componentIDTop, cap = max component types
}

func (r *componentRegistry) lookup(name string) *ComponentType {
	for _, ct := range r.types {
		if ct.name == name {
			return ct
		}
	}
	return nil
}

func (r *componentRegistry) full() bool {
	return len(r.types) == cap(r.types)
}

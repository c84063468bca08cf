package ecc

import (
	"fmt"
	"reflect"
)

// Resources is a type-keyed store for singletons that do not belong to any
// entity, such as game state or frame timing. At most one value per type is
// held. Slots freed by RemoveResource are reused.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIds []int
}

// AddResource stores res under its type T.
//
// Returns:
//   - ErrResourceExists if a *T is already stored, or ErrInvalidSize for a
//     nil res.
func AddResource[T any](r *Resources, res *T) error {
	t := reflect.TypeFor[T]()
	if res == nil {
		return fmt.Errorf("%w: nil resource %s", ErrInvalidSize, t)
	}
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		return fmt.Errorf("%w: %s", ErrResourceExists, t)
	}
	var id int
	if len(r.freeIds) > 0 {
		id = r.freeIds[len(r.freeIds)-1]
		r.freeIds = r.freeIds[:len(r.freeIds)-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return nil
}

// GetResource returns the stored *T.
func GetResource[T any](r *Resources) (*T, bool) {
	id, ok := r.types[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.items[id].(*T), true
}

// HasResource reports whether a *T is stored.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the stored *T, if any.
func RemoveResource[T any](r *Resources) {
	t := reflect.TypeFor[T]()
	id, ok := r.types[t]
	if !ok {
		return
	}
	delete(r.types, t)
	r.items[id] = nil
	r.freeIds = append(r.freeIds, id)
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear removes all resources, resetting the free list.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIds = r.freeIds[:0]
}

package ecc

import (
	"encoding/binary"
	"fmt"
	"reflect"
)

// Component is a typed handle over a registered ComponentType. Values of T
// are stored in the type's byte slots in little-endian binary layout, so T
// must have a fixed size: fixed-size numbers, bools, arrays and structs of
// those. Slices, strings, maps, pointers and plain int/uint are rejected.
//
// A Component is resolved once and then reused; it is the fast path for
// systems that touch the same type every frame.
type Component[T any] struct {
	*ComponentType
}

// RegisterComponent registers T with b under its Go type name, or returns
// the handle of the already registered type.
//
// Returns:
//   - The typed handle.
//   - ErrUnsupportedComponent if T has no fixed binary size, ErrInvalidSize
//     if the name is already registered with a different element size, or
//     any error of (*Bucket).RegisterComponentType.
func RegisterComponent[T any](b *Bucket) (Component[T], error) {
	name, size, err := componentLayout[T]()
	if err != nil {
		return Component[T]{}, err
	}
	ct, err := b.RegisterComponentType(size, name)
	if err != nil {
		return Component[T]{}, err
	}
	if ct.elementSize != size {
		return Component[T]{}, fmt.Errorf("%w: component %q registered with %d bytes, %s needs %d",
			ErrInvalidSize, name, ct.elementSize, name, size)
	}
	return Component[T]{ComponentType: ct}, nil
}

// Get decodes the component of e. ok is false if e is not live or does not
// carry the component.
func (c Component[T]) Get(b *Bucket, e Entity) (v T, ok bool) {
	slot, ok := b.GetComponentByID(e.Index(), c.ComponentType)
	if !ok {
		return v, false
	}
	if err := Decode(slot, &v); err != nil {
		return v, false
	}
	return v, true
}

// Set stores v as the component of e, attaching it first if e does not
// carry it yet.
func (c Component[T]) Set(b *Bucket, e Entity, v T) error {
	slot, ok := b.GetComponentByID(e.Index(), c.ComponentType)
	if !ok {
		var err error
		slot, err = b.AddComponentByID(e.Index(), c.ComponentType)
		if err != nil {
			return err
		}
	}
	return Encode(slot, v)
}

// Remove detaches the component from e.
func (c Component[T]) Remove(b *Bucket, e Entity) {
	b.RemoveComponentByID(e.Index(), c.ComponentType)
}

// Has reports whether e carries the component.
func (c Component[T]) Has(b *Bucket, e Entity) bool {
	return b.HasComponent(e, c.ComponentType)
}

// SetComponent stores v on e, registering T on first use. The handle is
// resolved by name on every call; hold a Component[T] in hot loops.
func SetComponent[T any](b *Bucket, e Entity, v T) error {
	c, err := RegisterComponent[T](b)
	if err != nil {
		return err
	}
	return c.Set(b, e, v)
}

// GetComponent retrieves the T component of e. ok is false if T was never
// registered with b, or e does not carry it.
func GetComponent[T any](b *Bucket, e Entity) (v T, ok bool) {
	c, ok := lookupComponent[T](b)
	if !ok {
		return v, false
	}
	return c.Get(b, e)
}

// RemoveComponent detaches the T component from e, if any.
func RemoveComponent[T any](b *Bucket, e Entity) {
	if c, ok := lookupComponent[T](b); ok {
		c.Remove(b, e)
	}
}

// Encode writes v into slot in little-endian binary layout.
func Encode[T any](slot []byte, v T) error {
	if _, err := binary.Encode(slot, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("encode %s: %w", reflect.TypeFor[T](), err)
	}
	return nil
}

// Decode reads slot into *v.
func Decode[T any](slot []byte, v *T) error {
	if _, err := binary.Decode(slot, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("decode %s: %w", reflect.TypeFor[T](), err)
	}
	return nil
}

func lookupComponent[T any](b *Bucket) (Component[T], bool) {
	ct := b.registry.lookup(reflect.TypeFor[T]().String())
	if ct == nil {
		return Component[T]{}, false
	}
	return Component[T]{ComponentType: ct}, true
}

func componentLayout[T any]() (name string, size int, err error) {
	t := reflect.TypeFor[T]()
	var zero T
	size = binary.Size(zero)
	// Size measures a slice by its length, which is zero here.
	if size < 0 || t.Kind() == reflect.Slice {
		return "", 0, fmt.Errorf("%w: %s has no fixed binary size", ErrUnsupportedComponent, t)
	}
	return t.String(), size, nil
}

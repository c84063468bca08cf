package ecc

import "errors"

var (
	// ErrOutOfMemory is returned when an arena cannot be created with the
	// requested capacity.
	ErrOutOfMemory = errors.New("ecc: out of memory")
	// ErrExhausted is returned when an arena, the entity table or the free
	// index queue has no room left.
	ErrExhausted = errors.New("ecc: capacity exhausted")
	// ErrInvalidSize is returned for negative allocation or element sizes.
	ErrInvalidSize = errors.New("ecc: invalid size")
	// ErrInvalidIndex is returned when an entity index is outside the live
	// range of the entity table.
	ErrInvalidIndex = errors.New("ecc: invalid entity index")
	// ErrUnknownComponent is returned when a handle-based operation is
	// given a nil or zero component type.
	ErrUnknownComponent = errors.New("ecc: unknown component type")
	// ErrRegistryFull is returned when no component type bit is left.
	ErrRegistryFull = errors.New("ecc: component type registry full")
	// ErrDestroyed is returned when an arena is used after Destroy.
	ErrDestroyed = errors.New("ecc: arena destroyed")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("ecc: invalid config")
	// ErrUnsupportedComponent is returned when a Go type has no fixed
	// binary layout and cannot live in a component slot.
	ErrUnsupportedComponent = errors.New("ecc: unsupported component type")
	// ErrResourceExists is returned when a resource of the same type is
	// already stored.
	ErrResourceExists = errors.New("ecc: resource already exists")
)

// Package ecc is a small entity-component-system runtime backed by a single
// fixed-size arena.
//
// # Overview
//
// Client code creates an Arena, builds a Bucket inside it, registers
// component types and attaches component data to entities. Every table the
// bucket owns lives in the arena: the entity table, the free index queue and
// one dense storage region per component type. Nothing is freed
// individually; the whole world is released with Arena.Destroy.
//
// # Basic Usage
//
//	arena, _ := ecc.NewArena(1 << 20)
//	defer arena.Destroy()
//
//	bucket, _ := ecc.NewBucket(arena, 1000)
//	pos, _ := ecc.RegisterComponent[Position](bucket)
//
//	e, _ := bucket.CreateEntity()
//	_ = pos.Set(bucket, e, Position{X: 1, Y: 2})
//
//	q := bucket.Query().With(pos.ComponentType)
//	bucket.Each(q, func(e ecc.Entity) bool {
//		p, _ := pos.Get(bucket, e)
//		...
//		return true
//	})
//
// # Entity Masks
//
// Each entity is one 64-bit word in the entity table. Bits 0 to 62 record
// which component types it carries, so a bucket holds at most
// MaxComponentTypes types; bit 63 marks the slot as live. A Query is an
// include mask and an exclude mask tested against that word.
//
// # Component Data
//
// Component slots are plain bytes. The name-keyed API (AddComponent,
// GetComponent) hands out the slot itself. Component[T] encodes and decodes
// T in little-endian binary layout, so T must have a fixed size.
//
// # Thread Safety
//
// Nothing in the package is safe for concurrent use.
package ecc

package ecc_test

import (
	"fmt"

	"github.com/Evankj/ecc"
)

type Position struct{ X, Y float32 }
type Velocity struct{ X, Y float32 }

func Example() {
	arena, err := ecc.NewArena(1 << 20)
	if err != nil {
		panic(err)
	}
	defer arena.Destroy()

	bucket, err := ecc.NewBucket(arena, 100)
	if err != nil {
		panic(err)
	}
	pos, _ := ecc.RegisterComponent[Position](bucket)
	vel, _ := ecc.RegisterComponent[Velocity](bucket)

	for i := range 3 {
		e, _ := bucket.CreateEntity()
		_ = pos.Set(bucket, e, Position{X: float32(i)})
		if i != 1 {
			_ = vel.Set(bucket, e, Velocity{X: 1, Y: 2})
		}
	}

	moving := bucket.Query().With(pos.ComponentType).With(vel.ComponentType)
	bucket.Each(moving, func(e ecc.Entity) bool {
		p, _ := pos.Get(bucket, e)
		v, _ := vel.Get(bucket, e)
		_ = pos.Set(bucket, e, Position{X: p.X + v.X, Y: p.Y + v.Y})
		return true
	})

	for _, e := range bucket.Collect(bucket.Query().With(pos.ComponentType), nil) {
		p, _ := pos.Get(bucket, e)
		fmt.Printf("entity %d at (%.0f, %.0f)\n", e, p.X, p.Y)
	}
	// Output:
	// entity 0 at (1, 2)
	// entity 1 at (1, 0)
	// entity 2 at (3, 2)
}

func ExampleBucket_AddComponent() {
	arena, _ := ecc.NewArena(4096)
	bucket, _ := ecc.NewBucket(arena, 10)

	e, _ := bucket.CreateEntity()
	slot, _ := bucket.AddComponent(e, 8, "Position")
	_ = ecc.Encode(slot, Position{X: 1, Y: 2})

	raw, ok := bucket.GetComponent(e, "Position")
	var p Position
	_ = ecc.Decode(raw, &p)
	fmt.Println(ok, p)

	bucket.RemoveComponent(e, "Position")
	_, ok = bucket.GetComponent(e, "Position")
	fmt.Println(ok, bucket.Mask(e))
	// Output:
	// true {1 2}
	// false 0
}

func ExampleBucket_DeleteEntity() {
	arena, _ := ecc.NewArena(4096)
	bucket, _ := ecc.NewBucket(arena, 10)

	for range 3 {
		_, _ = bucket.CreateEntity()
	}
	bucket.DeleteEntity(0)
	bucket.DeleteEntity(2)

	// Freed indices come back most recently freed first.
	a, _ := bucket.CreateEntity()
	b, _ := bucket.CreateEntity()
	c, _ := bucket.CreateEntity()
	fmt.Println(a, b, c, bucket.EntityCount())
	// Output:
	// 2 0 3 4
}

func ExampleArena_Allocate() {
	arena, _ := ecc.NewArena(16)

	first, _ := arena.Allocate(3)
	second, _ := arena.Allocate(8)
	fmt.Println(len(first), len(second), arena.Top())

	_, err := arena.Allocate(1)
	fmt.Println(err, arena.Top())
	// Output:
	// 3 8 16
	// ecc: capacity exhausted 16
}

func ExampleSubscribe() {
	arena, _ := ecc.NewArena(4096)
	bucket, _ := ecc.NewBucket(arena, 10)

	ecc.Subscribe(bucket.Events(), func(ev ecc.EntityCreated) {
		fmt.Println("created", ev.Entity)
	})
	ecc.Subscribe(bucket.Events(), func(ev ecc.ComponentAdded) {
		fmt.Println("added", ev.Type.Name(), "to", ev.Entity)
	})

	e, _ := bucket.CreateEntity()
	_ = ecc.SetComponent(bucket, e, Velocity{X: 1})
	// Output:
	// created 0
	// added ecc_test.Velocity to 0
}

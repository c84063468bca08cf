// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"log"

	"github.com/Evankj/ecc"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(count, iters, entities); err != nil {
		log.Fatalf("entities: %v", err)
	}
	p.Stop()
}

func run(rounds, iters, numEntities int) error {
	for range rounds {
		a, err := ecc.NewArena(64 << 20)
		if err != nil {
			return err
		}
		b, err := ecc.NewBucket(a, numEntities)
		if err != nil {
			return err
		}
		c1, err := ecc.RegisterComponent[comp1](b)
		if err != nil {
			return err
		}
		c2, err := ecc.RegisterComponent[comp2](b)
		if err != nil {
			return err
		}
		query := b.Query().With(c1.ComponentType).With(c2.ComponentType)
		entities := make([]ecc.Entity, 0, numEntities)

		for range iters {
			for range numEntities {
				e, err := b.CreateEntity()
				if err != nil {
					return err
				}
				if err := c1.Set(b, e, comp1{}); err != nil {
					return err
				}
				if err := c2.Set(b, e, comp2{V: 1, W: 2}); err != nil {
					return err
				}
			}
			entities = b.Collect(query, entities[:0])
			for _, e := range entities {
				v1, _ := c1.Get(b, e)
				v2, _ := c2.Get(b, e)
				v1.V += v2.V
				v1.W += v2.W
				_ = c1.Set(b, e, v1)
			}
			for _, e := range entities {
				b.DeleteEntity(e)
			}
		}
		a.Destroy()
	}
	return nil
}

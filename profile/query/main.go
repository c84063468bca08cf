// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 100
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	sum, err := run(count, iters, entities)
	p.Stop()
	if err != nil {
		log.Fatalf("query: %v", err)
	}
	log.Printf("query: matched %d entities", sum)
}

func run(rounds, iters, numEntities int) (int, error) {
	total := 0
	for range rounds {
		a, err := ecc.NewArena(64 << 20)
		if err != nil {
			return 0, err
		}
		b, err := ecc.NewBucket(a, numEntities)
		if err != nil {
			return 0, err
		}
		c1, _ := ecc.RegisterComponent[comp1](b)
		c2, _ := ecc.RegisterComponent[comp2](b)
		c3, _ := ecc.RegisterComponent[comp3](b)
		c4, _ := ecc.RegisterComponent[comp4](b)
		c5, _ := ecc.RegisterComponent[comp5](b)
		c6, err := ecc.RegisterComponent[comp6](b)
		if err != nil {
			return 0, err
		}
		for i := range numEntities {
			e, err := b.CreateEntity()
			if err != nil {
				return 0, err
			}
			_ = c1.Set(b, e, comp1{V: int64(i)})
			_ = c2.Set(b, e, comp2{V: 1})
			_ = c3.Set(b, e, comp3{})
			_ = c4.Set(b, e, comp4{})
			_ = c5.Set(b, e, comp5{})
			// Every other entity lacks comp6 so the exclusion path is hit.
			if i%2 == 0 {
				_ = c6.Set(b, e, comp6{})
			}
		}
		query := b.Query().
			With(c1.ComponentType).
			With(c2.ComponentType).
			With(c3.ComponentType).
			With(c4.ComponentType).
			With(c5.ComponentType).
			Without(c6.ComponentType)

		for range iters {
			b.Each(query, func(e ecc.Entity) bool {
				v1, _ := c1.Get(b, e)
				v2, _ := c2.Get(b, e)
				v1.V += v2.V
				_ = c1.Set(b, e, v1)
				total++
				return true
			})
		}
		a.Destroy()
	}
	return total, nil
}

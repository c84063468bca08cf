// Command benchmark times the entity churn loop: create an entity, attach a
// component, read it back, delete the entity.
//
//	go run ./cmd/benchmark -n 1000000 -json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Evankj/ecc"
	"github.com/pkg/profile"
	"github.com/sugawarayuuta/sonnet"
)

var (
	iterations = flag.Int("n", 100000, "Number of create/add/get/delete iterations")
	entities   = flag.Int("entities", 1, "Entity table capacity")
	arenaSize  = flag.Int("arena", 1<<20, "Arena capacity in bytes")
	jsonOut    = flag.Bool("json", false, "Print the result as JSON")
	profMode   = flag.String("profile", "", "Profile mode: cpu|mem (empty disables)")
)

type exampleComponent struct {
	Data [4]int32
}

// result is the machine-readable output of one run.
type result struct {
	Iterations int             `json:"iterations"`
	Elapsed    time.Duration   `json:"elapsed_ns"`
	NsPerOp    float64         `json:"ns_per_op"`
	Mismatches int             `json:"mismatches"`
	Bucket     ecc.BucketStats `json:"bucket"`
}

func main() {
	flag.Parse()

	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("benchmark: unknown profile mode %q", *profMode)
	}

	res, err := run(*iterations, *entities, *arenaSize)
	if err != nil {
		log.Fatalf("benchmark: %v", err)
	}

	if *jsonOut {
		out, err := sonnet.Marshal(res)
		if err != nil {
			log.Fatalf("benchmark: encode result: %v", err)
		}
		out = append(out, '\n')
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("benchmark: %v", err)
		}
		return
	}
	fmt.Printf("Benchmark completed in %.4f seconds (%d iterations, %.1f ns/op)\n",
		res.Elapsed.Seconds(), res.Iterations, res.NsPerOp)
	if res.Mismatches > 0 {
		fmt.Printf("Component data mismatches: %d\n", res.Mismatches)
	}
}

func run(iterations, maxEntities, arenaSize int) (result, error) {
	a, err := ecc.NewArena(arenaSize)
	if err != nil {
		return result{}, err
	}
	defer a.Destroy()

	b, err := ecc.NewBucket(a, maxEntities)
	if err != nil {
		return result{}, fmt.Errorf("create bucket: %w", err)
	}
	comp, err := ecc.RegisterComponent[exampleComponent](b)
	if err != nil {
		return result{}, fmt.Errorf("register component: %w", err)
	}

	res := result{Iterations: iterations}
	start := time.Now()
	for i := range iterations {
		e, err := b.CreateEntity()
		if err != nil {
			return result{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		if err := comp.Set(b, e, exampleComponent{Data: [4]int32{int32(i)}}); err != nil {
			return result{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		got, ok := comp.Get(b, e)
		if !ok || got.Data[0] != int32(i) {
			res.Mismatches++
		}
		b.DeleteEntity(e)
	}
	res.Elapsed = time.Since(start)
	if iterations > 0 {
		res.NsPerOp = float64(res.Elapsed.Nanoseconds()) / float64(iterations)
	}
	res.Bucket = b.Stats()
	return res, nil
}

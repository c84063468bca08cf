package ecc

import (
	"fmt"
	"testing"
)

func BenchmarkEventBusPublishNoHandlers(b *testing.B) {
	bus := &EventBus{}
	event := TestEvent{Value: 42}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Publish(bus, event)
	}
}

func BenchmarkEventBusPublish(b *testing.B) {
	handlers := []int{1, 10, 100}
	for _, n := range handlers {
		b.Run(fmt.Sprintf("%dHandlers", n), func(b *testing.B) {
			bus := &EventBus{}
			sum := 0
			for range n {
				Subscribe(bus, func(e TestEvent) { sum += e.Value })
			}
			event := TestEvent{Value: 42}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Publish(bus, event)
			}
			_ = sum
		})
	}
}

// BenchmarkBucketLifecycleEvents measures what subscribing to the bucket's
// lifecycle events costs the create/delete path.
func BenchmarkBucketLifecycleEvents(b *testing.B) {
	for _, subscribed := range []bool{false, true} {
		b.Run(fmt.Sprintf("subscribed=%v", subscribed), func(b *testing.B) {
			a, _ := NewArena(1 << 20)
			bucket, _ := NewBucket(a, 1024)
			count := 0
			if subscribed {
				Subscribe(bucket.Events(), func(EntityCreated) { count++ })
				Subscribe(bucket.Events(), func(EntityDeleted) { count-- })
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e, _ := bucket.CreateEntity()
				bucket.DeleteEntity(e)
			}
			_ = count
		})
	}
}

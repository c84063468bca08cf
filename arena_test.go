package ecc

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  error
	}{
		{"positive capacity", 1024, nil},
		{"one byte", 1, nil},
		{"zero capacity", 0, ErrOutOfMemory},
		{"negative capacity", -1, ErrOutOfMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArena(tt.capacity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewArena(%d) error = %v, want %v", tt.capacity, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if a.Capacity() != tt.capacity {
				t.Errorf("Capacity() = %d, want %d", a.Capacity(), tt.capacity)
			}
			if a.Top() != 0 {
				t.Errorf("Top() = %d, want 0", a.Top())
			}
		})
	}
}

func TestArenaAllocate(t *testing.T) {
	a, _ := NewArena(1024)

	b1, err := a.Allocate(100)
	if err != nil {
		t.Fatalf("Allocate(100) error = %v", err)
	}
	if len(b1) != 100 || cap(b1) != 100 {
		t.Errorf("Allocate(100) len/cap = %d/%d, want 100/100", len(b1), cap(b1))
	}
	if a.Top() != 100 {
		t.Errorf("Top() = %d, want 100", a.Top())
	}

	// Zero-size allocations succeed and only consume padding.
	b2, err := a.Allocate(0)
	if err != nil {
		t.Fatalf("Allocate(0) error = %v", err)
	}
	if len(b2) != 0 {
		t.Errorf("Allocate(0) len = %d, want 0", len(b2))
	}

	if _, err := a.Allocate(-1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Allocate(-1) error = %v, want ErrInvalidSize", err)
	}
}

func TestArenaAlignment(t *testing.T) {
	a, _ := NewArena(256)
	sizes := []int{1, 3, 8, 13, 16, 7}
	for _, size := range sizes {
		before := a.Top()
		if _, err := a.Allocate(size); err != nil {
			t.Fatalf("Allocate(%d) error = %v", size, err)
		}
		start := a.Top() - size
		if start%arenaAlign != 0 {
			t.Errorf("Allocate(%d) starts at %d, not %d-byte aligned", size, start, arenaAlign)
		}
		if start < before {
			t.Errorf("Allocate(%d) overlaps previous region: start %d < top %d", size, start, before)
		}
	}
}

func TestArenaZeroFill(t *testing.T) {
	a, _ := NewArena(64)
	b, _ := a.Allocate(32)
	for i := range b {
		b[i] = 0xff
	}
	a.Clear()
	b, _ = a.Allocate(32)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %#x after Clear and Allocate, want 0", i, v)
		}
	}
}

func TestArenaExhaustion(t *testing.T) {
	const capacity = 64
	a, _ := NewArena(capacity)

	for i := 0; i < capacity/8; i++ {
		if _, err := a.Allocate(8); err != nil {
			t.Fatalf("Allocate #%d error = %v", i, err)
		}
	}
	if a.Top() != capacity {
		t.Fatalf("Top() = %d, want %d", a.Top(), capacity)
	}

	_, err := a.Allocate(1)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Allocate(1) on full arena error = %v, want ErrExhausted", err)
	}
	if a.Top() != capacity {
		t.Errorf("Top() changed by failed Allocate: %d, want %d", a.Top(), capacity)
	}
}

func TestArenaExhaustionByPadding(t *testing.T) {
	a, _ := NewArena(16)
	if _, err := a.Allocate(9); err != nil {
		t.Fatalf("Allocate(9) error = %v", err)
	}
	// 7 bytes are left but the next aligned offset is 16.
	if _, err := a.Allocate(1); !errors.Is(err, ErrExhausted) {
		t.Errorf("Allocate(1) error = %v, want ErrExhausted", err)
	}
	if a.Top() != 9 {
		t.Errorf("Top() = %d, want 9", a.Top())
	}
	if r := a.Remaining(); r != 7 {
		t.Errorf("Remaining() = %d, want 7", r)
	}
}

func TestArenaUnalignedCapacity(t *testing.T) {
	a, _ := NewArena(9)
	if _, err := a.Allocate(3); err != nil {
		t.Fatalf("Allocate(3) error = %v", err)
	}
	// 6 bytes are free, but the next aligned offset leaves only 1.
	for i := range 2 {
		if _, err := a.Allocate(3); !errors.Is(err, ErrExhausted) {
			t.Errorf("Allocate(3) #%d error = %v, want ErrExhausted", i+2, err)
		}
	}
	if a.Top() != 3 {
		t.Errorf("Top() = %d, want 3", a.Top())
	}
	if _, err := a.Allocate(1); err != nil {
		t.Errorf("Allocate(1) into the aligned tail error = %v", err)
	}
}

func TestArenaClear(t *testing.T) {
	a, _ := NewArena(128)
	_, _ = a.Allocate(100)
	a.Clear()
	if a.Top() != 0 {
		t.Errorf("Top() after Clear = %d, want 0", a.Top())
	}
	if a.Capacity() != 128 {
		t.Errorf("Capacity() after Clear = %d, want 128", a.Capacity())
	}
	if _, err := a.Allocate(128); err != nil {
		t.Errorf("Allocate(128) after Clear error = %v", err)
	}
}

func TestArenaDestroy(t *testing.T) {
	a, _ := NewArena(128)
	a.Destroy()
	if !a.Destroyed() {
		t.Error("Destroyed() = false after Destroy")
	}
	if _, err := a.Allocate(1); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Allocate after Destroy error = %v, want ErrDestroyed", err)
	}
	if a.Capacity() != 0 {
		t.Errorf("Capacity() after Destroy = %d, want 0", a.Capacity())
	}
}

func TestArenaRewind(t *testing.T) {
	a, _ := NewArena(128)
	_, _ = a.Allocate(16)
	mark := a.Top()
	_, _ = a.Allocate(40)
	a.rewind(mark)
	if a.Top() != mark {
		t.Errorf("Top() after rewind = %d, want %d", a.Top(), mark)
	}
	// Marks ahead of top are ignored.
	a.rewind(100)
	if a.Top() != mark {
		t.Errorf("rewind past top moved Top() to %d", a.Top())
	}
}

func TestArenaMetrics(t *testing.T) {
	a, _ := NewArena(200)
	_, _ = a.Allocate(50)
	m := a.Metrics()
	if m.SizeInUse != 50 || m.Capacity != 200 || m.Remaining != 150 {
		t.Errorf("Metrics() = %+v", m)
	}
	if m.Utilization != 0.25 {
		t.Errorf("Utilization = %v, want 0.25", m.Utilization)
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{15, 16},
	}
	for _, tt := range tests {
		if got := alignUp(tt.input); got != tt.expected {
			t.Errorf("alignUp(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func BenchmarkArenaAllocate(b *testing.B) {
	a, _ := NewArena(1024 * 1024)
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := a.Allocate(size); err != nil {
					a.Clear()
				}
			}
		})
	}
}

package ecc

import "fmt"

// arenaAlign is the alignment of every region relative to the start of the
// backing buffer.
const arenaAlign = 8

// Arena is a bump allocator over one fixed-size buffer. Regions are handed
// out in order, zero-filled, and are only released all at once by Clear or
// Destroy. Not goroutine-safe.
type Arena struct {
	buf       []byte
	top       int
	destroyed bool
}

// NewArena creates an arena backed by capacity bytes.
//
// Parameters:
//   - capacity: The size of the backing buffer in bytes. Must be positive.
//
// Returns:
//   - The new Arena, or ErrOutOfMemory if capacity is not positive.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrOutOfMemory, capacity)
	}
	return &Arena{buf: make([]byte, capacity)}, nil
}

// Allocate reserves size bytes and returns them zero-filled. The region
// starts at an 8-byte aligned offset; any padding is consumed from the
// arena. On failure top is left untouched.
//
// Alignment wins over exact fill: after an allocation that is not a
// multiple of 8, the next one can fail with ErrExhausted while Remaining
// still reports free bytes. Size capacities in multiples of 8, or allocate
// in multiples of 8, to use every byte.
//
// The returned slice has its capacity clipped to size, so appending to it
// never spills into a neighbouring region.
func (a *Arena) Allocate(size int) ([]byte, error) {
	if a.destroyed {
		return nil, ErrDestroyed
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	start := alignUp(a.top)
	if start > len(a.buf) || size > len(a.buf)-start {
		return nil, ErrExhausted
	}
	end := start + size
	region := a.buf[start:end:end]
	clear(region)
	a.top = end
	return region, nil
}

// Clear rewinds the arena to empty without releasing the buffer. Every
// region handed out before the call is invalid afterwards.
func (a *Arena) Clear() {
	a.top = 0
}

// Destroy releases the backing buffer. The arena, and everything built on
// it, must not be used afterwards; Allocate returns ErrDestroyed.
func (a *Arena) Destroy() {
	a.buf = nil
	a.top = 0
	a.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (a *Arena) Destroyed() bool {
	return a.destroyed
}

// Top returns the number of bytes handed out, padding included.
func (a *Arena) Top() int {
	return a.top
}

// Capacity returns the size of the backing buffer.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the bytes left after top. An allocation may still fail
// with fewer bytes left than this when alignment padding is needed.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.top
}

// rewind moves top back to a previously observed mark. It is used to undo
// a multi-step construction that ran out of space half way.
func (a *Arena) rewind(mark int) {
	if mark >= 0 && mark <= a.top {
		a.top = mark
	}
}

// Metrics returns a snapshot of arena usage.
func (a *Arena) Metrics() ArenaMetrics {
	m := ArenaMetrics{
		SizeInUse: a.top,
		Capacity:  len(a.buf),
		Remaining: a.Remaining(),
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     `json:"size_in_use"` // Bytes handed out, padding included
	Capacity    int     `json:"capacity"`    // Size of the backing buffer
	Remaining   int     `json:"remaining"`   // Capacity minus SizeInUse
	Utilization float64 `json:"utilization"` // Ratio of used to total capacity (0.0-1.0)
}

// alignUp rounds off up to the arena alignment.
func alignUp(off int) int {
	return (off + arenaAlign - 1) &^ (arenaAlign - 1)
}

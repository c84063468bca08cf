package ecc

import "encoding/binary"

// queueNodeSize is the arena footprint of one node: an int64 value followed
// by the int64 arena offset of the next node (-1 terminates the list).
const queueNodeSize = 16

// Queue is a singly linked LIFO list whose nodes live in an Arena. The
// bucket uses it as its free-index stack. Popped nodes are never returned
// to the arena; they are kept on a spare list and reused by the next Push,
// so the arena footprint is bounded by the largest length the queue ever
// reached.
//
// A queue may be given a reserved node pool. Nodes are carved from the pool
// before the arena is asked for more, so a queue whose length never exceeds
// the pool size never fails to Push.
type Queue struct {
	arena    *Arena
	head     int // arena offset of the head node, -1 when empty
	spare    int // arena offset of the first recycled node, -1 when none
	poolNext int // arena offset of the next unused pool node
	poolEnd  int
	length   int
}

// NewQueue creates an empty queue that allocates its nodes from a.
func NewQueue(a *Arena) *Queue {
	return &Queue{arena: a, head: -1, spare: -1}
}

// newPooledQueue creates an empty queue whose first nodes come from the
// arena region [start, end). The region must have been allocated from a.
func newPooledQueue(a *Arena, start, end int) *Queue {
	return &Queue{arena: a, head: -1, spare: -1, poolNext: start, poolEnd: end}
}

// Push links v in as the new head.
//
// Returns:
//   - ErrExhausted if the arena has no room for another node, or
//     ErrDestroyed if the arena is gone.
func (q *Queue) Push(v int) error {
	if q.arena.destroyed {
		return ErrDestroyed
	}
	var node []byte
	off := q.spare
	switch {
	case off >= 0:
		node = q.arena.buf[off : off+queueNodeSize]
		q.spare = int(int64(binary.LittleEndian.Uint64(node[8:16])))
	case q.poolEnd-q.poolNext >= queueNodeSize:
		off = q.poolNext
		node = q.arena.buf[off : off+queueNodeSize]
		q.poolNext += queueNodeSize
	default:
		var err error
		node, err = q.arena.Allocate(queueNodeSize)
		if err != nil {
			return err
		}
		off = q.arena.top - queueNodeSize
	}
	binary.LittleEndian.PutUint64(node[0:8], uint64(int64(v)))
	binary.LittleEndian.PutUint64(node[8:16], uint64(int64(q.head)))
	q.head = off
	q.length++
	return nil
}

// Pop unlinks the head and returns its value. ok is false when the queue
// is empty.
func (q *Queue) Pop() (v int, ok bool) {
	node := q.headNode()
	if node == nil {
		return 0, false
	}
	v = int(int64(binary.LittleEndian.Uint64(node[0:8])))
	off := q.head
	q.head = int(int64(binary.LittleEndian.Uint64(node[8:16])))
	binary.LittleEndian.PutUint64(node[8:16], uint64(int64(q.spare)))
	q.spare = off
	q.length--
	return v, true
}

// Peek returns the head value without removing it.
func (q *Queue) Peek() (v int, ok bool) {
	node := q.headNode()
	if node == nil {
		return 0, false
	}
	return int(int64(binary.LittleEndian.Uint64(node[0:8]))), true
}

// Len returns the number of values in the queue.
func (q *Queue) Len() int {
	return q.length
}

func (q *Queue) headNode() []byte {
	if q.head < 0 || q.arena.destroyed {
		return nil
	}
	return q.arena.buf[q.head : q.head+queueNodeSize]
}

// Implements the ByteQueue, the byte-accounted FIFO underlying both sides
// of a Link. Chunks keep the timestamp they were enqueued with for their
// whole life, so the age of the oldest surviving byte stays observable
// even after partial consumption.

package sim

import (
	"fmt"
	"strings"
)

// Chunk is a timestamped run of bytes. It is an atomic unit for ordering
// but divisible for partial consumption; the timestamp never changes after
// construction, only the length may shrink.
type Chunk struct {
	length    int64
	timestamp int64
}

// NewChunk creates a chunk of length bytes stamped with timestamp.
// Panics if length is negative (caller contract violation).
func NewChunk(length, timestamp int64) *Chunk {
	if length < 0 {
		panic(fmt.Sprintf("NewChunk: negative length %d", length))
	}
	return &Chunk{length: length, timestamp: timestamp}
}

// Length returns the number of undelivered bytes left in the chunk.
func (c *Chunk) Length() int64 { return c.length }

// Timestamp returns the simulation time the chunk was originally enqueued.
func (c *Chunk) Timestamp() int64 { return c.timestamp }

// consume removes n bytes from the front of the chunk.
// n must lie in [0, Length()].
func (c *Chunk) consume(n int64) {
	if n < 0 || n > c.length {
		panic(fmt.Sprintf("Chunk.consume: n=%d out of range for length %d", n, c.length))
	}
	c.length -= n
}

// ByteQueue is a FIFO of chunks with a running byte total. A chunk leaves
// the queue exactly when its length reaches zero, so Total() always equals
// the sum of resident chunk lengths.
type ByteQueue struct {
	chunks []*Chunk
	total  int64
}

// Append pushes a new chunk of length bytes stamped now to the back.
// The queue is unbounded. Panics if length is negative.
func (q *ByteQueue) Append(length, now int64) {
	q.chunks = append(q.chunks, NewChunk(length, now))
	q.total += length
}

// Get consumes up to limit bytes from the front chunk only; callers loop to
// drain further. Returns the bytes consumed and the front chunk's original
// timestamp; ok is false when the queue is empty. A partial read reduces
// the front chunk in place without touching its timestamp.
// Panics if limit is negative.
func (q *ByteQueue) Get(limit int64) (n int64, timestamp int64, ok bool) {
	if limit < 0 {
		panic(fmt.Sprintf("ByteQueue.Get: negative limit %d", limit))
	}
	if len(q.chunks) == 0 {
		return 0, 0, false
	}
	front := q.chunks[0]
	n = min(front.Length(), limit)
	timestamp = front.Timestamp()
	front.consume(n)
	q.total -= n
	if front.Length() == 0 {
		q.chunks = q.chunks[1:]
	}
	return n, timestamp, true
}

// Peek returns the front chunk without consuming it, or nil if empty.
func (q *ByteQueue) Peek() *Chunk {
	if len(q.chunks) == 0 {
		return nil
	}
	return q.chunks[0]
}

// Len returns the number of resident chunks.
func (q *ByteQueue) Len() int { return len(q.chunks) }

// IsEmpty reports whether the queue holds no chunks.
func (q *ByteQueue) IsEmpty() bool { return len(q.chunks) == 0 }

// Total returns the sum of all undelivered bytes, in O(1).
func (q *ByteQueue) Total() int64 { return q.total }

func (q *ByteQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range q.chunks {
		fmt.Fprintf(&sb, "(%d@%d)", c.length, c.timestamp)
		if i < len(q.chunks)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

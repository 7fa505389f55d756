package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// UnlimitedThroughput disables the per-Update transfer cap on a Link.
const UnlimitedThroughput int64 = math.MaxInt64

// Link is a one-directional, latency-and-throughput-limited channel built
// from two ByteQueues. Bytes enter through Write, cross from ingress to
// egress during Update once they are old enough, and leave through Read.
//
// Throughput and Latency are exported so a driver can mutate them between
// ticks to simulate changing network conditions; chunks already resident
// keep their timestamps across such reconfiguration.
type Link struct {
	Name       string
	Throughput int64 // bytes moved per Update call; UnlimitedThroughput = no cap
	Latency    int64 // minimum chunk age before it may leave ingress

	ingress ByteQueue
	egress  ByteQueue
}

// NewLink creates an empty link. Panics on a non-positive throughput or a
// negative latency (caller contract violation); pass UnlimitedThroughput
// for an uncapped link.
func NewLink(name string, throughput, latency int64) *Link {
	if throughput <= 0 {
		panic(fmt.Sprintf("NewLink(%s): non-positive throughput %d", name, throughput))
	}
	if latency < 0 {
		panic(fmt.Sprintf("NewLink(%s): negative latency %d", name, latency))
	}
	return &Link{Name: name, Throughput: throughput, Latency: latency}
}

// Write appends length bytes stamped now to the ingress queue. Ingress is
// unbounded: backpressure comes from the sender's window, not the link.
func (l *Link) Write(length, now int64) {
	l.ingress.Append(length, now)
	logrus.Debugf("[%s] write %d to ingress", l.Name, length)
}

// Update moves bytes from ingress to egress, applying two gates in FIFO
// order: the front chunk must be at least Latency old, and the call as a
// whole moves at most Throughput bytes. A chunk that is still too new
// blocks everything behind it (strict in-order delivery); a chunk may be
// split to exactly fit the remaining budget. Moved bytes keep their
// original timestamps.
func (l *Link) Update(now int64) {
	available := l.Throughput
	var moved int64
	for available > 0 {
		front := l.ingress.Peek()
		if front == nil {
			break
		}
		if now-front.Timestamp() < l.Latency {
			// Too new.
			break
		}
		n, timestamp, _ := l.ingress.Get(available)
		l.egress.Append(n, timestamp)
		available -= n
		moved += n
	}
	if moved > 0 {
		logrus.Debugf("[%s] moved %d bytes to egress at now=%d", l.Name, moved, now)
	}
}

// Read drains the egress queue completely and returns the original
// timestamp of the oldest chunk read together with the total bytes read;
// ok is false when nothing was available. Each extraction is bounded by
// Throughput but the loop repeats until the queue is empty, so the call as
// a whole is not throughput-limited: the wire is the throttled part of the
// model, reception at the far end is instantaneous.
func (l *Link) Read() (oldest int64, total int64, ok bool) {
	for {
		n, timestamp, more := l.egress.Get(l.Throughput)
		if !more {
			break
		}
		if !ok {
			oldest = timestamp
			ok = true
		}
		total += n
	}
	return oldest, total, ok
}

// QueuedBytes returns the bytes still waiting in the ingress queue.
func (l *Link) QueuedBytes() int64 { return l.ingress.Total() }

// DeliveredBytes returns the bytes sitting in egress, crossed but not yet read.
func (l *Link) DeliveredBytes() int64 { return l.egress.Total() }

func (l *Link) String() string {
	return fmt.Sprintf("Ingress: %s    Egress: %s", l.ingress.String(), l.egress.String())
}

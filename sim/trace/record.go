// Package trace provides per-tick observability records for the
// flow-control simulation. It holds pure data types plus their
// aggregation and has no dependency on sim/.
package trace

// TickRecord captures the observable state of the loop after one tick.
// The fields mirror the columns of the per-tick console report.
type TickRecord struct {
	Time      int64
	Wrote     int64 // bytes the sender emitted this tick
	Released  int64 // bytes acknowledged this tick
	Available int64 // unused sender capacity after the tick
	Capacity  int64 // sender's outstanding-byte ceiling
	Delta     int64 // capacity change applied this tick
	Queued    int64 // bytes waiting in the outbound ingress queue
	Latency   int64 // round-trip latency observed this tick
	LatencyOK bool  // false until an acknowledgment has arrived
	AckTime   int64 // original timestamp of the oldest byte acked
	AckTimeOK bool

	Status     string // controller decision label
	Throughput int64  // outbound link throughput in effect
	NetLatency int64  // outbound link latency in effect
}

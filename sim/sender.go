package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// TrafficSource supplies the random draws behind synthetic traffic
// generation. Injecting it keeps the sender deterministic under test.
type TrafficSource interface {
	// Uniform returns a draw from [lo, hi).
	Uniform(lo, hi float64) float64
	// HalfNormal returns |N(0, sigma)|.
	HalfNormal(sigma float64) float64
}

// randTraffic backs TrafficSource with a seeded *rand.Rand.
type randTraffic struct {
	rng *rand.Rand
}

// NewRandTraffic wraps rng as a TrafficSource.
func NewRandTraffic(rng *rand.Rand) TrafficSource {
	return &randTraffic{rng: rng}
}

func (r *randTraffic) Uniform(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

func (r *randTraffic) HalfNormal(sigma float64) float64 {
	return math.Abs(r.rng.NormFloat64() * sigma)
}

// Sender generates synthetic outbound traffic, paces it against the
// controller-driven capacity, and drains acknowledgments from the return
// link to reclaim in-flight budget. used counts bytes written but not yet
// acknowledged; available is whatever remains under the current capacity.
type Sender struct {
	capacity int64
	used     int64
	floor    int64

	outbound   *Link
	inbound    *Link
	controller *WindowController
	traffic    TrafficSource

	burstMin   float64
	burstMax   float64
	chunkSigma float64

	// Observability fields, read by the driver after each tick.
	lastLatency   int64
	lastLatencyOK bool
	lastAckTime   int64
	lastAckOK     bool
	lastDelta     int64
	bytesWritten  int64
	bytesReleased int64
}

// NewSender creates a sender pacing traffic into outbound and reading
// acknowledgments from inbound. Panics on a negative floor or an initial
// capacity below the floor (caller contract violation).
func NewSender(cfg TrafficConfig, outbound, inbound *Link, controller *WindowController, traffic TrafficSource) *Sender {
	if cfg.FloorCapacity < 0 {
		panic("NewSender: negative capacity floor")
	}
	if cfg.InitialCapacity < cfg.FloorCapacity {
		panic("NewSender: initial capacity below floor")
	}
	return &Sender{
		capacity:   cfg.InitialCapacity,
		floor:      cfg.FloorCapacity,
		outbound:   outbound,
		inbound:    inbound,
		controller: controller,
		traffic:    traffic,
		burstMin:   cfg.BurstMin,
		burstMax:   cfg.BurstMax,
		chunkSigma: cfg.ChunkSigma,
	}
}

// ReadAcks drains the return link and reclaims in-flight budget. Returns
// the round-trip latency of the oldest acknowledged byte; ok is false when
// no acknowledgment was available this tick.
func (s *Sender) ReadAcks(now int64) (latency int64, ok bool) {
	oldest, n, ok := s.inbound.Read()
	if !ok {
		s.bytesReleased = 0
		return 0, false
	}
	// Floored at zero: an ack can release more than is on the books after
	// a capacity adjustment, and that is not an error.
	s.used = max(0, s.used-n)
	s.bytesReleased = n
	s.lastAckTime = oldest
	s.lastAckOK = true
	logrus.Debugf("sender: acked %d bytes with timestamp %d, used=%d", n, oldest, s.used)
	return now - oldest, true
}

// Update runs one sender tick: reclaim acknowledged capacity, apply the
// controller's verdict, then emit new traffic up to the available window.
// The controller sees the pre-ack outstanding count, so a window that was
// full until this very tick still counts as saturated.
func (s *Sender) Update(now int64) {
	outstanding := s.used
	latency, ok := s.ReadAcks(now)
	if ok {
		s.lastLatency = latency
		s.lastLatencyOK = true
	}

	delta := s.controller.Update(latency, ok, now, outstanding, s.lastAckTime, s.bytesReleased)
	s.lastDelta = delta
	s.capacity = max(s.floor, s.capacity+delta)

	var written int64
	bursts := int64(s.traffic.Uniform(s.burstMin, s.burstMax))
	for i := int64(0); i < bursts; i++ {
		if s.Available() == 0 {
			break
		}
		n := min(s.Available(), int64(math.Round(s.traffic.HalfNormal(s.chunkSigma))))
		if n == 0 {
			continue
		}
		s.outbound.Write(n, now)
		s.used += n
		written += n
	}
	s.bytesWritten = written
	logrus.Debugf("sender: wrote %d, used=%d/%d", written, s.used, s.capacity)
}

// Available returns the unused portion of the current capacity.
func (s *Sender) Available() int64 {
	return max(0, s.capacity-s.used)
}

// Capacity returns the controller-driven ceiling on outstanding bytes.
func (s *Sender) Capacity() int64 { return s.capacity }

// Used returns the bytes currently in flight.
func (s *Sender) Used() int64 { return s.used }

// BytesWritten returns the bytes emitted on the latest Update.
func (s *Sender) BytesWritten() int64 { return s.bytesWritten }

// BytesReleased returns the bytes acknowledged on the latest Update.
func (s *Sender) BytesReleased() int64 { return s.bytesReleased }

// LastDelta returns the capacity change applied on the latest Update.
func (s *Sender) LastDelta() int64 { return s.lastDelta }

// LastLatency returns the most recently observed round-trip latency;
// ok is false until the first acknowledgment arrives.
func (s *Sender) LastLatency() (int64, bool) { return s.lastLatency, s.lastLatencyOK }

// LastAckTime returns the original timestamp of the oldest byte in the most
// recent acknowledgment; ok is false until the first acknowledgment arrives.
func (s *Sender) LastAckTime() (int64, bool) { return s.lastAckTime, s.lastAckOK }

// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/flowsim/flowsim/sim/trace"
)

// Simulator owns the whole flow-control loop: both link directions, the
// window controller, the paced sender, and the echoing peer. One Tick runs
// every component's Update exactly once, in a fixed deterministic order,
// then snapshots the observable state. There are no package-level
// singletons; everything hangs off this one object.
type Simulator struct {
	Clock        int64
	Horizon      int64
	TickInterval int64

	Outbound   *Link
	Return     *Link
	Controller *WindowController
	Sender     *Sender
	Echo       *EchoPeer
	Metrics    *Metrics

	// Trace, when set, records every tick for post-run analysis.
	Trace *trace.Trace
	// OnTick, when set, receives the snapshot of every completed tick.
	OnTick func(trace.TickRecord)

	reshuffleInterval int64
	network           TrafficSource
}

// NewSimulator wires up the loop: an outbound link from the sender to the
// echo peer, a return link for acknowledgments, and a controller feeding
// capacity deltas to the sender. All randomness derives from simCfg.Seed
// through per-subsystem RNGs, so a fixed seed gives a bit-reproducible run.
func NewSimulator(simCfg SimulationConfig, outCfg, retCfg LinkConfig, ctrlCfg ControllerConfig, trafCfg TrafficConfig) *Simulator {
	if simCfg.TickInterval <= 0 {
		panic("NewSimulator: tick interval must be positive")
	}

	rng := NewPartitionedRNG(NewSimulationKey(simCfg.Seed))

	outbound := NewLink(outCfg.Name, outCfg.Throughput, outCfg.Latency)
	ret := NewLink(retCfg.Name, retCfg.Throughput, retCfg.Latency)
	controller := NewWindowController(ctrlCfg, 0)
	sender := NewSender(trafCfg, outbound, ret, controller,
		NewRandTraffic(rng.ForSubsystem(SubsystemTraffic)))
	echo := NewEchoPeer(outbound, ret)

	return &Simulator{
		Horizon:           simCfg.Horizon,
		TickInterval:      simCfg.TickInterval,
		Outbound:          outbound,
		Return:            ret,
		Controller:        controller,
		Sender:            sender,
		Echo:              echo,
		Metrics:           NewMetrics(),
		reshuffleInterval: simCfg.ReshuffleInterval,
		network:           NewRandTraffic(rng.ForSubsystem(SubsystemNetwork)),
	}
}

// Tick advances the simulation by one step: both links move eligible bytes,
// the sender drains acks and emits new traffic, the echo peer acknowledges
// whatever crossed the outbound link. The update order is fixed; no
// component ever runs twice in a tick.
func (s *Simulator) Tick() trace.TickRecord {
	now := s.Clock
	logrus.Debugf("[tick %07d] begin", now)

	s.Outbound.Update(now)
	s.Return.Update(now)
	s.Sender.Update(now)
	s.Echo.Update(now)

	rec := s.snapshot(now)
	s.Metrics.Observe(rec)
	if s.Trace != nil {
		s.Trace.Record(rec)
	}
	if s.OnTick != nil {
		s.OnTick(rec)
	}

	s.Clock += s.TickInterval
	if s.reshuffleInterval > 0 && s.Clock%s.reshuffleInterval == 0 {
		s.reshuffleLinks()
	}
	return rec
}

// Run advances the simulation until the horizon is reached.
func (s *Simulator) Run() {
	for s.Clock < s.Horizon {
		s.Tick()
	}
	logrus.Infof("[tick %07d] Simulation ended", s.Clock)
}

// snapshot reads the observability fields of every component. None of
// these reads mutate core state.
func (s *Simulator) snapshot(now int64) trace.TickRecord {
	rec := trace.TickRecord{
		Time:       now,
		Wrote:      s.Sender.BytesWritten(),
		Released:   s.Sender.BytesReleased(),
		Available:  s.Sender.Available(),
		Capacity:   s.Sender.Capacity(),
		Delta:      s.Sender.LastDelta(),
		Queued:     s.Outbound.QueuedBytes(),
		Status:     s.Controller.Status().String(),
		Throughput: s.Outbound.Throughput,
		NetLatency: s.Outbound.Latency,
	}
	if latency, ok := s.Sender.LastLatency(); ok {
		rec.Latency, rec.LatencyOK = latency, true
	}
	if ackTime, ok := s.Sender.LastAckTime(); ok {
		rec.AckTime, rec.AckTimeOK = ackTime, true
	}
	return rec
}

// reshuffleLinks simulates changing network conditions by redrawing the
// outbound link's throughput and latency. Chunks already in flight keep
// their timestamps and byte totals.
func (s *Simulator) reshuffleLinks() {
	s.Outbound.Throughput = int64(s.network.Uniform(100, 10000))
	s.Outbound.Latency = int64(s.network.Uniform(10, 100))
	logrus.Infof("[tick %07d] network reshuffle: throughput=%d latency=%d",
		s.Clock, s.Outbound.Throughput, s.Outbound.Latency)
}

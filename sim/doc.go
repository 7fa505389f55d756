// Package sim provides the core discrete-time simulation of an adaptive
// flow-control loop over a latency-and-throughput-limited link.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - queue.go: the byte-accounted FIFO of timestamped chunks under everything
//   - link.go: the one-directional link built from an ingress and an egress queue
//   - controller.go: the window controller turning latency trends into capacity deltas
//
// # Architecture
//
// A Simulator owns one outbound Link (sender → echo peer), one return Link
// (acknowledgments), a WindowController, a Sender, and an EchoPeer. Every
// Tick runs each component's Update once, in a fixed order: outbound link,
// return link, sender, echo peer. The sender writes synthetic traffic into
// the outbound link while its outstanding bytes stay under the
// controller-driven capacity; the echo peer re-injects whatever crossed the
// link onto the return path with the original timestamps, so the sender's
// ack reads measure true round-trip latency.
//
// All randomness (traffic sizes, periodic link reconfiguration) derives
// from one master seed through PartitionedRNG, making runs with a fixed
// seed bit-reproducible. Per-tick observability records live in sim/trace.
package sim

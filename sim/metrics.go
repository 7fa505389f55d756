// Tracks run-wide aggregates for final reporting.

package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/flowsim/flowsim/sim/trace"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating controller behavior over a whole run.
type Metrics struct {
	Ticks              int
	TotalBytesWritten  int64
	TotalBytesReleased int64
	PeakQueueDepth     int64 // max bytes waiting in the outbound ingress
	PeakCapacity       int64
	MinCapacity        int64
	WindowIncreases    int // ticks with a positive capacity delta
	WindowDecreases    int // ticks with a negative capacity delta
	LatencySamples     []float64
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{MinCapacity: math.MaxInt64}
}

// Observe folds one tick's snapshot into the running aggregates.
func (m *Metrics) Observe(rec trace.TickRecord) {
	m.Ticks++
	m.TotalBytesWritten += rec.Wrote
	m.TotalBytesReleased += rec.Released
	if rec.Queued > m.PeakQueueDepth {
		m.PeakQueueDepth = rec.Queued
	}
	if rec.Capacity > m.PeakCapacity {
		m.PeakCapacity = rec.Capacity
	}
	if rec.Capacity < m.MinCapacity {
		m.MinCapacity = rec.Capacity
	}
	if rec.Delta > 0 {
		m.WindowIncreases++
	}
	if rec.Delta < 0 {
		m.WindowDecreases++
	}
	if rec.LatencyOK {
		m.LatencySamples = append(m.LatencySamples, float64(rec.Latency))
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Ticks                : %d\n", m.Ticks)
	if m.Ticks == 0 {
		return
	}
	fmt.Printf("Bytes Written        : %d\n", m.TotalBytesWritten)
	fmt.Printf("Bytes Released       : %d\n", m.TotalBytesReleased)
	fmt.Printf("Peak Queue Depth     : %d bytes\n", m.PeakQueueDepth)
	fmt.Printf("Capacity Range       : [%d, %d]\n", m.MinCapacity, m.PeakCapacity)
	fmt.Printf("Window Increases     : %d\n", m.WindowIncreases)
	fmt.Printf("Window Decreases     : %d\n", m.WindowDecreases)
	if len(m.LatencySamples) > 0 {
		fmt.Printf("Mean Latency         : %.2f time units\n", stat.Mean(m.LatencySamples, nil))
	}
}

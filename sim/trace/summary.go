package trace

import "gonum.org/v1/gonum/stat"

// Summary aggregates statistics from a recorded run.
type Summary struct {
	Ticks         int
	BytesWritten  int64
	BytesReleased int64
	MeanLatency   float64 // over ticks where an acknowledgment arrived
	MaxLatency    int64
	MeanCapacity  float64
	MinCapacity   int64
	MaxCapacity   int64
	StatusCounts  map[string]int // controller label → tick count
}

// Summarize computes aggregate statistics from a trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *Summary {
	summary := &Summary{
		StatusCounts: make(map[string]int),
	}
	if t == nil || len(t.Records) == 0 {
		return summary
	}

	summary.Ticks = len(t.Records)

	latencies := make([]float64, 0, len(t.Records))
	capacities := make([]float64, len(t.Records))
	summary.MinCapacity = t.Records[0].Capacity
	for i, rec := range t.Records {
		summary.BytesWritten += rec.Wrote
		summary.BytesReleased += rec.Released
		summary.StatusCounts[rec.Status]++

		capacities[i] = float64(rec.Capacity)
		if rec.Capacity < summary.MinCapacity {
			summary.MinCapacity = rec.Capacity
		}
		if rec.Capacity > summary.MaxCapacity {
			summary.MaxCapacity = rec.Capacity
		}

		if rec.LatencyOK {
			latencies = append(latencies, float64(rec.Latency))
			if rec.Latency > summary.MaxLatency {
				summary.MaxLatency = rec.Latency
			}
		}
	}

	summary.MeanCapacity = stat.Mean(capacities, nil)
	if len(latencies) > 0 {
		summary.MeanLatency = stat.Mean(latencies, nil)
	}

	return summary
}

package trace

import "testing"

func TestSummarize_NilAndEmpty_ZeroValues(t *testing.T) {
	// GIVEN a nil trace and an empty trace
	for _, tr := range []*Trace{nil, NewTrace()} {
		// WHEN summarized
		summary := Summarize(tr)

		// THEN all fields are zero-valued
		if summary.Ticks != 0 {
			t.Errorf("Ticks: got %d, want 0", summary.Ticks)
		}
		if summary.BytesWritten != 0 || summary.BytesReleased != 0 {
			t.Error("expected zero byte totals")
		}
		if summary.MeanLatency != 0 || summary.MaxLatency != 0 {
			t.Error("expected zero latency stats")
		}
		if len(summary.StatusCounts) != 0 {
			t.Error("expected empty status counts")
		}
	}
}

func TestSummarize_PopulatedTrace_CorrectAggregates(t *testing.T) {
	// GIVEN a trace with known records
	tr := NewTrace()
	tr.Record(TickRecord{Time: 0, Wrote: 100, Released: 0, Capacity: 128, Status: "no data"})
	tr.Record(TickRecord{Time: 20, Wrote: 50, Released: 100, Capacity: 128, Status: "waiting", Latency: 40, LatencyOK: true})
	tr.Record(TickRecord{Time: 40, Wrote: 80, Released: 50, Capacity: 228, Status: "speed up", Latency: 60, LatencyOK: true})

	// WHEN summarized
	summary := Summarize(tr)

	// THEN aggregates match
	if summary.Ticks != 3 {
		t.Errorf("Ticks: got %d, want 3", summary.Ticks)
	}
	if summary.BytesWritten != 230 {
		t.Errorf("BytesWritten: got %d, want 230", summary.BytesWritten)
	}
	if summary.BytesReleased != 150 {
		t.Errorf("BytesReleased: got %d, want 150", summary.BytesReleased)
	}
	if summary.MinCapacity != 128 || summary.MaxCapacity != 228 {
		t.Errorf("capacity range: got [%d, %d], want [128, 228]", summary.MinCapacity, summary.MaxCapacity)
	}
	if summary.StatusCounts["no data"] != 1 || summary.StatusCounts["waiting"] != 1 || summary.StatusCounts["speed up"] != 1 {
		t.Errorf("status counts: got %v", summary.StatusCounts)
	}
}

func TestSummarize_LatencyStats_OnlyOverTicksWithAcks(t *testing.T) {
	// GIVEN a trace where only some ticks observed latency
	tr := NewTrace()
	tr.Record(TickRecord{Capacity: 128, Status: "no data"})
	tr.Record(TickRecord{Capacity: 128, Status: "waiting", Latency: 40, LatencyOK: true})
	tr.Record(TickRecord{Capacity: 128, Status: "no data"})
	tr.Record(TickRecord{Capacity: 128, Status: "waiting", Latency: 80, LatencyOK: true})

	// WHEN summarized
	summary := Summarize(tr)

	// THEN the mean covers only ticks with an acknowledgment
	if summary.MeanLatency != 60 {
		t.Errorf("MeanLatency: got %v, want 60", summary.MeanLatency)
	}
	if summary.MaxLatency != 80 {
		t.Errorf("MaxLatency: got %d, want 80", summary.MaxLatency)
	}
}

package sim

import "testing"

func TestLink_Update_AgeGating(t *testing.T) {
	// GIVEN a link with latency 20 and a chunk written at t=0
	link := NewLink("test", 500, 20)
	link.Write(100, 0)

	// WHEN Update runs before the chunk is old enough
	link.Update(19)

	// THEN nothing crosses
	if link.DeliveredBytes() != 0 {
		t.Errorf("Update(19): delivered %d bytes, want 0", link.DeliveredBytes())
	}

	// WHEN Update runs at exactly the eligibility boundary
	link.Update(20)

	// THEN the whole chunk crosses
	if link.DeliveredBytes() != 100 {
		t.Errorf("Update(20): delivered %d bytes, want 100", link.DeliveredBytes())
	}
	if link.QueuedBytes() != 0 {
		t.Errorf("Update(20): %d bytes still queued, want 0", link.QueuedBytes())
	}
}

func TestLink_Update_IneligibleChunkBlocksEverythingBehindIt(t *testing.T) {
	// GIVEN an eligible chunk in front of one that is still too new
	link := NewLink("test", 500, 20)
	link.Write(100, 0)
	link.Write(100, 15)

	// WHEN Update runs at t=20
	link.Update(20)

	// THEN only the eligible chunk crosses; the newer one blocks in place
	if link.DeliveredBytes() != 100 {
		t.Errorf("delivered %d bytes, want 100", link.DeliveredBytes())
	}
	if link.QueuedBytes() != 100 {
		t.Errorf("queued %d bytes, want 100", link.QueuedBytes())
	}
}

func TestLink_Update_ThroughputCap_SplitsChunk(t *testing.T) {
	// GIVEN an 800-byte chunk on a 500-byte/tick link
	link := NewLink("test", 500, 20)
	link.Write(800, 0)

	// WHEN Update runs once past the latency gate
	link.Update(20)

	// THEN exactly the budget crosses and the remainder keeps its timestamp
	if link.DeliveredBytes() != 500 {
		t.Errorf("delivered %d bytes, want 500", link.DeliveredBytes())
	}
	if link.QueuedBytes() != 300 {
		t.Errorf("queued %d bytes, want 300", link.QueuedBytes())
	}
	if front := link.ingress.Peek(); front == nil || front.Timestamp() != 0 {
		t.Errorf("split remainder lost its timestamp: %v", front)
	}

	// AND the remainder crosses on the next Update
	link.Update(40)
	if link.DeliveredBytes() != 800 {
		t.Errorf("after second Update: delivered %d bytes, want 800", link.DeliveredBytes())
	}
}

func TestLink_Update_ThroughputCapAcrossChunks(t *testing.T) {
	// GIVEN two 300-byte chunks and a 500-byte budget
	link := NewLink("test", 500, 0)
	link.Write(300, 0)
	link.Write(300, 0)

	// WHEN Update runs
	link.Update(0)

	// THEN the call moves exactly 500 bytes in aggregate
	if link.DeliveredBytes() != 500 {
		t.Errorf("delivered %d bytes, want 500", link.DeliveredBytes())
	}
	if link.QueuedBytes() != 100 {
		t.Errorf("queued %d bytes, want 100", link.QueuedBytes())
	}
}

func TestLink_Update_MovedChunksRetainTimestamps(t *testing.T) {
	// GIVEN chunks written at distinct times
	link := NewLink("test", UnlimitedThroughput, 10)
	link.Write(40, 0)
	link.Write(60, 5)

	// WHEN both become eligible and cross
	link.Update(30)

	// THEN reading them back reports the oldest original timestamp
	oldest, total, ok := link.Read()
	if !ok || total != 100 {
		t.Fatalf("Read: got (%d, %d, %v), want (_, 100, true)", oldest, total, ok)
	}
	if oldest != 0 {
		t.Errorf("oldest timestamp: got %d, want 0", oldest)
	}
}

func TestLink_Read_FullDrain_NotThroughputLimited(t *testing.T) {
	// GIVEN 900 bytes sitting in egress on a link reconfigured down to
	// 10 bytes/tick
	link := NewLink("test", 1000, 0)
	link.Write(900, 0)
	link.Update(0)
	link.Throughput = 10

	// WHEN Read is called once
	oldest, total, ok := link.Read()

	// THEN the entire egress drains in the single call: transfer is
	// throttled, reception is instantaneous
	if !ok || total != 900 {
		t.Errorf("Read: got (%d, %d, %v), want (0, 900, true)", oldest, total, ok)
	}
	if link.DeliveredBytes() != 0 {
		t.Errorf("egress not empty after Read: %d bytes", link.DeliveredBytes())
	}
}

func TestLink_Read_Empty_ReturnsNotOK(t *testing.T) {
	link := NewLink("test", 500, 20)
	if _, total, ok := link.Read(); ok || total != 0 {
		t.Errorf("Read on empty link: got (%d, %v), want (0, false)", total, ok)
	}
}

func TestLink_UnlimitedThroughput_MovesEverythingEligible(t *testing.T) {
	// GIVEN a large backlog on an uncapped link
	link := NewLink("acks", UnlimitedThroughput, 20)
	for i := 0; i < 10; i++ {
		link.Write(10000, 0)
	}

	// WHEN Update runs past the latency gate
	link.Update(20)

	// THEN the whole backlog crosses in one call
	if link.DeliveredBytes() != 100000 {
		t.Errorf("delivered %d bytes, want 100000", link.DeliveredBytes())
	}
}

func TestLink_Reconfigure_PreservesResidentChunks(t *testing.T) {
	// GIVEN chunks resident in both queues
	link := NewLink("test", 500, 20)
	link.Write(400, 0)
	link.Write(300, 10)
	link.Update(20) // moves the first chunk

	// WHEN throughput and latency are mutated between ticks
	link.Throughput = 50
	link.Latency = 5

	// THEN totals and timestamps are intact
	if link.QueuedBytes() != 300 {
		t.Errorf("queued %d bytes after reconfigure, want 300", link.QueuedBytes())
	}
	if link.DeliveredBytes() != 400 {
		t.Errorf("delivered %d bytes after reconfigure, want 400", link.DeliveredBytes())
	}
	if front := link.ingress.Peek(); front == nil || front.Timestamp() != 10 {
		t.Errorf("resident chunk timestamp changed: %v", front)
	}

	// AND the new parameters govern the next Update: 50-byte budget
	link.Update(20)
	if link.DeliveredBytes() != 450 {
		t.Errorf("after reconfigured Update: delivered %d, want 450", link.DeliveredBytes())
	}
}

func TestNewLink_InvalidParameters_Panics(t *testing.T) {
	tests := []struct {
		name       string
		throughput int64
		latency    int64
	}{
		{"zero throughput", 0, 20},
		{"negative throughput", -5, 20},
		{"negative latency", 500, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewLink(%d, %d): expected panic", tt.throughput, tt.latency)
				}
			}()
			NewLink("bad", tt.throughput, tt.latency)
		})
	}
}

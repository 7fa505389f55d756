package trace

import "testing"

func TestTrace_Record_AppendsInOrder(t *testing.T) {
	// GIVEN an empty trace
	tr := NewTrace()
	if tr.Len() != 0 {
		t.Fatalf("new trace length: got %d, want 0", tr.Len())
	}

	// WHEN records are added
	tr.Record(TickRecord{Time: 0, Wrote: 100})
	tr.Record(TickRecord{Time: 20, Wrote: 50})

	// THEN they are retained in order
	if tr.Len() != 2 {
		t.Fatalf("trace length: got %d, want 2", tr.Len())
	}
	if tr.Records[0].Time != 0 || tr.Records[1].Time != 20 {
		t.Errorf("record order: got times %d, %d", tr.Records[0].Time, tr.Records[1].Time)
	}
}

package trace

// Trace collects TickRecords during a run.
type Trace struct {
	Records []TickRecord
}

// NewTrace creates a Trace ready for recording.
func NewTrace() *Trace {
	return &Trace{Records: make([]TickRecord, 0)}
}

// Record appends one tick snapshot.
func (t *Trace) Record(rec TickRecord) {
	t.Records = append(t.Records, rec)
}

// Len returns the number of recorded ticks.
func (t *Trace) Len() int {
	return len(t.Records)
}

// internal/sched/sink.go

package sched

// Sink receives every state transition in the order it happens.
type Sink interface {
	Record(ev Event)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ev Event)

func (f SinkFunc) Record(ev Event) { f(ev) }

// Recorder is an append-only in-memory Sink.
type Recorder struct {
	events []Event
}

func (r *Recorder) Record(ev Event) { r.events = append(r.events, ev) }

// Events returns the recorded transitions. Callers must not modify the slice.
func (r *Recorder) Events() []Event { return r.events }

// MemoryHook is told about admissions and terminations.
type MemoryHook interface {
	Assign(tick int64, p *Process)
	Release(tick int64, p *Process)
}

// ZeroMemory does no allocation and reports zero usage on every admission.
type ZeroMemory struct {
	records []MemoryRecord
}

func (m *ZeroMemory) Assign(tick int64, _ *Process) {
	m.records = append(m.records, MemoryRecord{Tick: tick})
}

func (m *ZeroMemory) Release(int64, *Process) {}

// Records returns one usage record per admission.
func (m *ZeroMemory) Records() []MemoryRecord { return m.records }

// multiSink fans an event out to several sinks.
type multiSink []Sink

func (ms multiSink) Record(ev Event) {
	for _, s := range ms {
		s.Record(ev)
	}
}

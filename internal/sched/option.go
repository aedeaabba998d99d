package sched

// Option configures a Scheduler.
type Option func(s *Scheduler)

// WithSink adds an observer that receives every transition in addition
// to the scheduler's own recorder.
func WithSink(sink Sink) Option {
	return func(s *Scheduler) { s.sinks = append(s.sinks, sink) }
}

// WithMemory replaces the default ZeroMemory hook.
func WithMemory(hook MemoryHook) Option {
	return func(s *Scheduler) { s.hook = hook }
}

// internal/sched/scheduler.go

package sched

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoProcesses    = errors.New("no processes to schedule")
	ErrDuplicatePID   = errors.New("duplicate pid")
	ErrInvalidBurst   = errors.New("processing time must be positive")
	ErrInvalidArrival = errors.New("arrival time must not be negative")
	ErrInvalidIO      = errors.New("I/O frequency and duration must not be negative")
)

// Scheduler is a single-CPU discrete-time scheduler. Each tick it admits
// arrivals, releases finished I/O, dispatches onto an idle CPU and runs
// the dispatched process for one tick, in that order.
type Scheduler struct {
	policy Policy
	clock  *TickClock

	ready   ReadyQueue // READY processes, ordered by the policy
	waiting *waitSet   // WAITING processes keyed by release tick
	jobs    *jobList   // every admitted process
	procs   []*Process // every process, input order
	pending []*Process // not yet admitted, input order
	running *Process   // nil while the CPU is idle
	slice   int        // consecutive ticks the running process has had

	recorder *Recorder
	sinks    []Sink
	sink     Sink
	hook     MemoryHook // set by WithMemory
	memory   MemoryHook // hook, or a fresh ZeroMemory per run
}

// Result is the outcome of one simulation run.
type Result struct {
	Policy    string
	Processes []Process // final records, input order
	Events    []Event
	Memory    []MemoryRecord
	EndTick   int64 // value of the clock when the loop halted
}

// New creates a Scheduler dispatching with the given policy.
func New(policy Policy, opts ...Option) *Scheduler {
	s := &Scheduler{policy: policy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunSimulation runs procs to completion under policy.
func RunSimulation(ctx context.Context, procs []Process, policy Policy) (*Result, error) {
	return New(policy).Run(ctx, procs)
}

// Validate rejects inputs on which the loop would never halt.
func Validate(procs []Process) error {
	if len(procs) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[PID]bool, len(procs))
	for _, p := range procs {
		if seen[p.PID] {
			return fmt.Errorf("%w: %d", ErrDuplicatePID, p.PID)
		}
		seen[p.PID] = true
		if p.ProcessingTime <= 0 {
			return fmt.Errorf("pid %d: %w", p.PID, ErrInvalidBurst)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("pid %d: %w", p.PID, ErrInvalidArrival)
		}
		if p.IOFrequency < 0 || p.IODuration < 0 {
			return fmt.Errorf("pid %d: %w", p.PID, ErrInvalidIO)
		}
	}
	return nil
}

// Run simulates procs until every one of them has terminated. The input
// slice is not modified; final records are returned in the Result.
func (s *Scheduler) Run(ctx context.Context, procs []Process) (*Result, error) {
	if err := Validate(procs); err != nil {
		return nil, err
	}
	s.reset(procs)
	logrus.Infof("Starting %s simulation with %d processes", s.policy.Name(), len(procs))

	for !s.done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		now := s.clock.Now()

		s.admit(now)
		s.releaseIO(now)
		if s.running == nil {
			s.dispatch(now)
		}
		if s.running != nil {
			s.execute(now)
		}

		s.clock.Advance()
	}

	res := &Result{
		Policy:    s.policy.Name(),
		Processes: make([]Process, 0, len(procs)),
		Events:    s.recorder.Events(),
		EndTick:   s.clock.Now(),
	}
	for _, p := range s.procs {
		res.Processes = append(res.Processes, *p)
	}
	if rec, ok := s.memory.(interface{ Records() []MemoryRecord }); ok {
		res.Memory = rec.Records()
	}
	logrus.Infof("%s simulation complete at tick %d (%d transitions)", s.policy.Name(), res.EndTick, len(res.Events))
	return res, nil
}

func (s *Scheduler) reset(procs []Process) {
	s.clock = NewTickClock()
	s.ready = s.policy.NewReadyQueue()
	s.waiting = newWaitSet()
	s.jobs = newJobList()
	s.running = nil
	s.slice = 0

	s.procs = make([]*Process, len(procs))
	for i := range procs {
		p := procs[i]
		p.RemainingTime = p.ProcessingTime
		p.StartTime = unsetStart
		p.State = StateNew
		s.procs[i] = &p
	}
	s.pending = append([]*Process(nil), s.procs...)

	s.recorder = &Recorder{}
	s.sink = append(multiSink{s.recorder}, s.sinks...)
	s.memory = s.hook
	if s.memory == nil {
		s.memory = &ZeroMemory{}
	}
}

// done reports whether every process has been admitted and terminated.
func (s *Scheduler) done() bool {
	return len(s.pending) == 0 && s.jobs.AllTerminated()
}

// admit moves processes arriving at now from NEW to READY, in input order.
func (s *Scheduler) admit(now int64) {
	kept := s.pending[:0]
	for _, p := range s.pending {
		if p.ArrivalTime != now {
			kept = append(kept, p)
			continue
		}
		s.memory.Assign(now, p)
		s.transition(now, p, StateReady)
		s.ready.Push(p)
		s.jobs.Add(p)
	}
	s.pending = kept
}

// releaseIO moves processes whose I/O completes at now back to READY.
func (s *Scheduler) releaseIO(now int64) {
	for _, p := range s.waiting.Release(now) {
		s.transition(now, p, StateReady)
		s.ready.Push(p)
	}
}

// dispatch puts the policy's choice on the idle CPU.
func (s *Scheduler) dispatch(now int64) {
	p, ok := s.policy.Select(s.ready)
	if !ok {
		return
	}
	if !p.Started() {
		p.StartTime = now
	}
	s.transition(now, p, StateRunning)
	s.running = p
	s.slice = 0
}

// execute runs the dispatched process for one tick. Transitions out of
// RUNNING take effect at the start of the next tick. I/O is checked
// before termination, and termination before quantum expiry.
func (s *Scheduler) execute(now int64) {
	p := s.running
	p.RemainingTime--
	s.slice++
	next := now + 1

	switch {
	case p.dueForIO():
		s.transition(next, p, StateWaiting)
		s.waiting.Add(p, next+p.IODuration)
		s.idle()
	case p.RemainingTime == 0:
		s.transition(next, p, StateTerminated)
		s.memory.Release(next, p)
		s.idle()
	case s.policy.Expired(s.slice):
		s.transition(next, p, StateReady)
		s.ready.Push(p)
		s.idle()
	}
}

func (s *Scheduler) idle() {
	s.running = nil
	s.slice = 0
}

func (s *Scheduler) transition(tick int64, p *Process, to State) {
	from := p.State
	p.moveTo(to)
	logrus.Debugf("[tick %07d] pid %d %s->%s", tick, p.PID, from, to)
	s.sink.Record(Event{Tick: tick, PID: p.PID, From: from, To: to})
}

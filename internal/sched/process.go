package sched

import "fmt"

// PID uniquely identifies a process. Under EP it is also the priority key:
// the lower the pid, the sooner the process is dispatched.
type PID int

// unsetStart marks a process that has never been dispatched.
const unsetStart int64 = -1

// Process is the control block of one simulated process.
type Process struct {
	PID            PID
	ArrivalTime    int64 // tick at which the process is admitted
	ProcessingTime int64 // total CPU ticks of the burst
	RemainingTime  int64 // CPU ticks still owed, starts at ProcessingTime
	IOFrequency    int64 // executed ticks between induced I/O waits (0 disables I/O)
	IODuration     int64 // ticks spent in WAITING per I/O (0 disables I/O)
	StartTime      int64 // tick of first dispatch, -1 until then
	State          State
}

// NewProcess creates a NEW process with a full burst still owed.
func NewProcess(pid PID, arrival, processing, ioFreq, ioDuration int64) Process {
	return Process{
		PID:            pid,
		ArrivalTime:    arrival,
		ProcessingTime: processing,
		RemainingTime:  processing,
		IOFrequency:    ioFreq,
		IODuration:     ioDuration,
		StartTime:      unsetStart,
		State:          StateNew,
	}
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool { return p.StartTime != unsetStart }

// Executed returns the number of CPU ticks the process has consumed so far.
func (p *Process) Executed() int64 { return p.ProcessingTime - p.RemainingTime }

// DoesIO reports whether the process ever blocks for I/O.
func (p *Process) DoesIO() bool { return p.IOFrequency > 0 && p.IODuration > 0 }

// dueForIO is evaluated right after a tick of execution.
// A process that has just finished its burst never blocks.
func (p *Process) dueForIO() bool {
	return p.DoesIO() && p.Executed()%p.IOFrequency == 0 && p.RemainingTime > 0
}

// moveTo switches the process into state to, panicking on an edge
// the state machine does not have.
func (p *Process) moveTo(to State) {
	if !p.State.CanTransition(to) {
		panic(fmt.Sprintf("sched: illegal transition %s->%s for pid %d", p.State, to, p.PID))
	}
	p.State = to
}

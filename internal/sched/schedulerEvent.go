// internal/sched/schedulerEvent.go

package sched

import "fmt"

// State is the scheduling state of a process.
type State int

const (
	StateNew State = iota
	StateReady
	StateRunning
	StateWaiting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateWaiting:
		return "WAITING"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// ParseState is the inverse of State.String.
func ParseState(s string) (State, bool) {
	for st := StateNew; st <= StateTerminated; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}

// transitions lists every legal edge of the process state machine.
var transitions = map[State][]State{
	StateNew:     {StateReady},
	StateReady:   {StateRunning},
	StateRunning: {StateWaiting, StateReady, StateTerminated},
	StateWaiting: {StateReady},
}

// CanTransition reports whether from -> to is an edge of the state machine.
func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Event is emitted for every state transition.
type Event struct {
	Tick int64
	PID  PID
	From State
	To   State
}

func (e Event) String() string {
	return fmt.Sprintf("%d %d %s->%s", e.Tick, e.PID, e.From, e.To)
}

// MemoryRecord is the usage snapshot emitted on every admission.
// Memory is not modelled, so every counter is zero.
type MemoryRecord struct {
	Tick   int64
	Used   int64
	Free   int64
	Usable int64
}

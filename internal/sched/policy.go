// internal/sched/policy.go

package sched

import (
	"fmt"
	"strings"
)

// DefaultQuantum is the round-robin time slice in ticks.
const DefaultQuantum = 2

// Policy decides which READY process gets the idle CPU and when a
// running process must give it back.
type Policy interface {
	Name() string
	// NewReadyQueue returns a ready queue ordered the way Select expects.
	NewReadyQueue() ReadyQueue
	// Select removes and returns the next process to dispatch.
	Select(rq ReadyQueue) (*Process, bool)
	// Expired reports whether a process that has run slice consecutive
	// ticks must be preempted.
	Expired(slice int) bool
}

// EP dispatches the lowest pid and never preempts.
type EP struct{}

// NewEP returns the lowest-pid-first policy.
func NewEP() *EP { return &EP{} }

func (*EP) Name() string { return "EP" }

func (*EP) NewReadyQueue() ReadyQueue { return newPIDQueue() }

func (*EP) Select(rq ReadyQueue) (*Process, bool) { return rq.Pop() }

func (*EP) Expired(int) bool { return false }

// RR dispatches in FIFO order and preempts after Quantum ticks.
type RR struct {
	Quantum int
}

// NewRR returns a round-robin policy. A non-positive quantum falls back
// to DefaultQuantum.
func NewRR(quantum int) *RR {
	if quantum <= 0 {
		quantum = DefaultQuantum
	}
	return &RR{Quantum: quantum}
}

func (*RR) Name() string { return "RR" }

func (*RR) NewReadyQueue() ReadyQueue { return newFIFOQueue() }

func (*RR) Select(rq ReadyQueue) (*Process, bool) { return rq.Pop() }

func (r *RR) Expired(slice int) bool { return slice >= r.Quantum }

// ValidPolicies is the set of recognized policy names.
var ValidPolicies = map[string]bool{"ep": true, "rr": true}

// NewPolicy creates a Policy by name ("ep" or "rr", case-insensitive).
func NewPolicy(name string, quantum int) (Policy, error) {
	switch strings.ToLower(name) {
	case "ep":
		return NewEP(), nil
	case "rr":
		return NewRR(quantum), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_CanTransition(t *testing.T) {
	legal := [][2]State{
		{StateNew, StateReady},
		{StateReady, StateRunning},
		{StateRunning, StateWaiting},
		{StateRunning, StateReady},
		{StateRunning, StateTerminated},
		{StateWaiting, StateReady},
	}
	isLegal := func(from, to State) bool {
		for _, e := range legal {
			if e[0] == from && e[1] == to {
				return true
			}
		}
		return false
	}
	for from := StateNew; from <= StateTerminated; from++ {
		for to := StateNew; to <= StateTerminated; to++ {
			assert.Equal(t, isLegal(from, to), from.CanTransition(to), "%s->%s", from, to)
		}
	}
}

func TestState_ParseRoundTrip(t *testing.T) {
	for st := StateNew; st <= StateTerminated; st++ {
		got, ok := ParseState(st.String())
		assert.True(t, ok)
		assert.Equal(t, st, got)
	}
	_, ok := ParseState("BLOCKED")
	assert.False(t, ok)
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "12 3 RUNNING->WAITING", Event{Tick: 12, PID: 3, From: StateRunning, To: StateWaiting}.String())
}

func TestProcess_MoveToPanicsOnIllegalEdge(t *testing.T) {
	p := NewProcess(1, 0, 1, 0, 0)
	assert.Panics(t, func() { p.moveTo(StateRunning) })
}

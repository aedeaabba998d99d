package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pids(ps []*Process) []PID {
	out := make([]PID, len(ps))
	for i, p := range ps {
		out[i] = p.PID
	}
	return out
}

func drain(q ReadyQueue) []PID {
	var out []PID
	for {
		p, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, p.PID)
	}
}

func TestFIFOQueue_PopsInEnqueueOrder(t *testing.T) {
	q := newFIFOQueue()
	for _, pid := range []PID{3, 1, 2} {
		p := NewProcess(pid, 0, 1, 0, 0)
		q.Push(&p)
	}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []PID{3, 1, 2}, pids(q.Values()))
	assert.Equal(t, []PID{3, 1, 2}, drain(q))

	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestPIDQueue_PopsLowestPID(t *testing.T) {
	q := newPIDQueue()
	for _, pid := range []PID{30, 4, 17, 9} {
		p := NewProcess(pid, 0, 1, 0, 0)
		q.Push(&p)
	}
	assert.Equal(t, []PID{4, 9, 17, 30}, pids(q.Values()))

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, PID(4), first.PID)

	// a lower pid pushed later still goes first
	p := NewProcess(1, 0, 1, 0, 0)
	q.Push(&p)
	assert.Equal(t, []PID{1, 9, 17, 30}, drain(q))
	assert.Zero(t, q.Len())
}

func TestWaitSet_ReleasesDueEntriesInEntryOrder(t *testing.T) {
	w := newWaitSet()
	a, b, c := NewProcess(1, 0, 1, 0, 0), NewProcess(2, 0, 1, 0, 0), NewProcess(3, 0, 1, 0, 0)
	w.Add(&c, 5)
	w.Add(&a, 7)
	w.Add(&b, 5)

	assert.Empty(t, w.Release(4))
	assert.Equal(t, []PID{3, 2}, pids(w.Release(5)))
	assert.Empty(t, w.Release(6))
	assert.Equal(t, []PID{1}, pids(w.Release(7)))
	assert.Zero(t, w.Len())
}

func TestJobList_AllTerminated(t *testing.T) {
	j := newJobList()
	assert.False(t, j.AllTerminated(), "an empty job list never reports done")

	a, b := NewProcess(1, 0, 1, 0, 0), NewProcess(2, 0, 1, 0, 0)
	j.Add(&a)
	j.Add(&b)
	a.State = StateTerminated
	assert.False(t, j.AllTerminated())

	b.State = StateTerminated
	assert.True(t, j.AllTerminated())
	assert.Equal(t, 2, j.Len())
}

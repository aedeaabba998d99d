// internal/sched/queue.go

package sched

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// ReadyQueue holds READY processes. Its ordering is chosen by the
// dispatch policy that creates it.
type ReadyQueue interface {
	Push(p *Process)
	// Pop removes and returns the next process to dispatch.
	Pop() (*Process, bool)
	Len() int
	// Values returns the queued processes in dispatch order.
	Values() []*Process
}

// fifoQueue dispatches in enqueue order.
type fifoQueue struct {
	q *linkedlistqueue.Queue
}

func newFIFOQueue() *fifoQueue {
	return &fifoQueue{q: linkedlistqueue.New()}
}

func (f *fifoQueue) Push(p *Process) { f.q.Enqueue(p) }

func (f *fifoQueue) Pop() (*Process, bool) {
	v, ok := f.q.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*Process), true
}

func (f *fifoQueue) Len() int { return f.q.Size() }

func (f *fifoQueue) Values() []*Process { return toProcesses(f.q.Values()) }

// pidQueue dispatches the lowest pid first. Pids are unique so the
// tree key needs no secondary tie-break.
type pidQueue struct {
	rbt *redblacktree.Tree
}

func newPIDQueue() *pidQueue {
	return &pidQueue{rbt: redblacktree.NewWith(comparePID)}
}

func (q *pidQueue) Push(p *Process) { q.rbt.Put(p.PID, p) }

func (q *pidQueue) Pop() (*Process, bool) {
	node := q.rbt.Left()
	if node == nil {
		return nil, false
	}
	q.rbt.Remove(node.Key)
	return node.Value.(*Process), true
}

func (q *pidQueue) Len() int { return q.rbt.Size() }

func (q *pidQueue) Values() []*Process { return toProcesses(q.rbt.Values()) }

func comparePID(a, b any) int {
	pa, pb := a.(PID), b.(PID)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}

// waitEntry is a WAITING process paired with the tick it is released on.
type waitEntry struct {
	release int64
	seq     uint64 // entry order, keeps releases on the same tick stable
	proc    *Process
}

// waitSet is a min-heap of blocked processes keyed by release tick.
type waitSet struct {
	heap *binaryheap.Heap
	seq  uint64
}

func newWaitSet() *waitSet {
	return &waitSet{heap: binaryheap.NewWith(compareWait)}
}

func (w *waitSet) Add(p *Process, release int64) {
	w.seq++
	w.heap.Push(waitEntry{release: release, seq: w.seq, proc: p})
}

// Release pops every process whose release tick has come, in the order
// they entered WAITING.
func (w *waitSet) Release(now int64) []*Process {
	var out []*Process
	for {
		v, ok := w.heap.Peek()
		if !ok || v.(waitEntry).release > now {
			return out
		}
		w.heap.Pop()
		out = append(out, v.(waitEntry).proc)
	}
}

func (w *waitSet) Len() int { return w.heap.Size() }

func compareWait(a, b any) int {
	wa, wb := a.(waitEntry), b.(waitEntry)
	switch {
	case wa.release < wb.release:
		return -1
	case wa.release > wb.release:
		return 1
	case wa.seq < wb.seq:
		return -1
	case wa.seq > wb.seq:
		return 1
	default:
		return 0
	}
}

// jobList tracks every admitted process in admission order.
type jobList struct {
	m *linkedhashmap.Map
}

func newJobList() *jobList {
	return &jobList{m: linkedhashmap.New()}
}

func (j *jobList) Add(p *Process) { j.m.Put(p.PID, p) }

func (j *jobList) Len() int { return j.m.Size() }

// AllTerminated is false for an empty list so the loop never halts
// before the first arrival.
func (j *jobList) AllTerminated() bool {
	if j.m.Empty() {
		return false
	}
	it := j.m.Iterator()
	for it.Next() {
		if it.Value().(*Process).State != StateTerminated {
			return false
		}
	}
	return true
}

func toProcesses(vals []any) []*Process {
	out := make([]*Process, len(vals))
	for i, v := range vals {
		out[i] = v.(*Process)
	}
	return out
}

// Package metrics derives per-run scheduling statistics from a
// transition trace.
package metrics

import (
	"sort"

	"ticksched/internal/sched"
)

// Summary holds the statistics of one run.
type Summary struct {
	NumProcesses  int
	Throughput    float64 // terminated processes per tick, up to the last termination
	AvgWait       float64 // mean ticks spent READY before each dispatch, summed per process
	AvgTurnaround float64 // mean ticks from admission to termination
	AvgResponse   float64 // mean ticks from entering WAITING to being released
}

type procInfo struct {
	arrival    int64
	hasArrival bool
	finish     int64
	hasFinish  bool
	wait       int64
	readySince int64
	isReady    bool
}

// Compute derives a Summary from events. Events are ordered by tick first;
// events sharing a tick keep their relative order.
func Compute(events []sched.Event) Summary {
	if len(events) == 0 {
		return Summary{}
	}
	evs := append([]sched.Event(nil), events...)
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].Tick < evs[j].Tick })

	procs := make(map[sched.PID]*procInfo)
	ioStart := make(map[sched.PID]int64)
	var responses []int64

	for _, ev := range evs {
		info, ok := procs[ev.PID]
		if !ok {
			info = &procInfo{}
			procs[ev.PID] = info
		}

		if ev.From == sched.StateNew && ev.To == sched.StateReady && !info.hasArrival {
			info.arrival, info.hasArrival = ev.Tick, true
		}
		if ev.To == sched.StateReady {
			info.readySince, info.isReady = ev.Tick, true
		}
		if ev.From == sched.StateReady && ev.To == sched.StateRunning && info.isReady {
			info.wait += ev.Tick - info.readySince
			info.isReady = false
		}
		if ev.To == sched.StateTerminated {
			info.finish, info.hasFinish = ev.Tick, true
		}
		if ev.From == sched.StateRunning && ev.To == sched.StateWaiting {
			ioStart[ev.PID] = ev.Tick
		}
		if ev.From == sched.StateWaiting && ev.To == sched.StateReady {
			if start, ok := ioStart[ev.PID]; ok {
				responses = append(responses, ev.Tick-start)
				delete(ioStart, ev.PID)
			}
		}
	}

	var (
		finished    int
		lastFinish  int64
		waits       []int64
		turnarounds []int64
	)
	for _, info := range procs {
		if !info.hasFinish {
			continue
		}
		finished++
		if info.finish > lastFinish {
			lastFinish = info.finish
		}
		if info.hasArrival {
			waits = append(waits, info.wait)
			turnarounds = append(turnarounds, info.finish-info.arrival)
		}
	}

	s := Summary{
		NumProcesses:  len(procs),
		AvgWait:       mean(waits),
		AvgTurnaround: mean(turnarounds),
		AvgResponse:   mean(responses),
	}
	if lastFinish > 0 {
		s.Throughput = float64(finished) / float64(lastFinish)
	}
	return s
}

func mean(vals []int64) float64 {
	if len(vals) == 0 {
		return 0.0
	}
	var sum int64
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

package metrics

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"ticksched/internal/sched"
)

var plainLine = regexp.MustCompile(`^(\d+) (-?\d+) ([A-Z]+)->([A-Z]+)$`)

// ParseLog reads transitions back from a rendered execution log in either
// layout. Lines that are not transitions (borders, headers, footers) are
// skipped.
func ParseLog(r io.Reader) ([]sched.Event, error) {
	var events []sched.Event
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		var fields []string
		switch {
		case strings.HasPrefix(line, "|"):
			if strings.Contains(line, "Time of Transition") {
				continue
			}
			for _, part := range strings.Split(line, "|") {
				if part = strings.TrimSpace(part); part != "" {
					fields = append(fields, part)
				}
			}
		default:
			m := plainLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			fields = m[1:]
		}
		if ev, ok := toEvent(fields); ok {
			events = append(events, ev)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading execution log: %w", err)
	}
	return events, nil
}

func toEvent(fields []string) (sched.Event, bool) {
	if len(fields) != 4 {
		return sched.Event{}, false
	}
	tick, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return sched.Event{}, false
	}
	pid, err := strconv.Atoi(fields[1])
	if err != nil {
		return sched.Event{}, false
	}
	from, ok := sched.ParseState(fields[2])
	if !ok {
		return sched.Event{}, false
	}
	to, ok := sched.ParseState(fields[3])
	if !ok {
		return sched.Event{}, false
	}
	return sched.Event{Tick: tick, PID: sched.PID(pid), From: from, To: to}, true
}

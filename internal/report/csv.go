package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"ticksched/internal/sched"
)

// WriteCSV exports events as tick,pid,from,to rows under a header row.
func WriteCSV(w io.Writer, events []sched.Event) error {
	cw := csv.NewWriter(w)

	// write header
	cw.Write([]string{"tick", "pid", "from", "to"})
	for _, ev := range events {
		cw.Write([]string{
			strconv.FormatInt(ev.Tick, 10),
			strconv.Itoa(int(ev.PID)),
			ev.From.String(),
			ev.To.String(),
		})
	}
	cw.Flush()
	return cw.Error()
}

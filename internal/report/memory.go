package report

import (
	"bufio"
	"fmt"
	"io"

	"ticksched/internal/sched"
)

// WriteMemory renders one usage line per admission.
func WriteMemory(w io.Writer, records []sched.MemoryRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "TIME=%d USED=%d FREE=%d USABLE=%d\n", r.Tick, r.Used, r.Free, r.Usable); err != nil {
			return err
		}
	}
	return bw.Flush()
}

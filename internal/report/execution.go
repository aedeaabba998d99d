// Package report renders scheduler output: the execution log, the memory
// log and a CSV export of transitions.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"ticksched/internal/sched"
)

// ExecutionHeader names the columns of the table layout.
var ExecutionHeader = []string{"Time of Transition", "PID", "Old State", "New State"}

const (
	plainHeader = "--- execution trace ---"
	plainFooter = "--- end of trace ---"
)

// WriteExecution renders events in the given layout (sched.LayoutTable or
// sched.LayoutPlain).
func WriteExecution(w io.Writer, events []sched.Event, layout string) error {
	var buf bytes.Buffer
	switch layout {
	case sched.LayoutPlain:
		renderPlain(&buf, events)
	case sched.LayoutTable, "":
		renderTable(&buf, events)
	default:
		return fmt.Errorf("unknown layout %q", layout)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func renderTable(w io.Writer, events []sched.Event) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(ExecutionHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})
	for _, ev := range events {
		table.Append([]string{
			strconv.FormatInt(ev.Tick, 10),
			strconv.Itoa(int(ev.PID)),
			ev.From.String(),
			ev.To.String(),
		})
	}
	table.Render()
}

func renderPlain(w io.Writer, events []sched.Event) {
	fmt.Fprintln(w, plainHeader)
	for _, ev := range events {
		fmt.Fprintln(w, ev.String())
	}
	fmt.Fprintln(w, plainFooter)
}

package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// SummaryColumns is the header row of the summary CSV.
var SummaryColumns = []string{
	"scheduler",
	"trace",
	"num_processes",
	"throughput",
	"avg_wait",
	"avg_turnaround",
	"avg_response",
}

// Row is one line of the summary CSV.
type Row struct {
	Scheduler string
	Trace     string
	Summary
}

// WriteSummary writes rows as CSV under SummaryColumns.
func WriteSummary(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Write(SummaryColumns)
	for _, r := range rows {
		cw.Write([]string{
			r.Scheduler,
			r.Trace,
			strconv.Itoa(r.NumProcesses),
			fmt.Sprintf("%.4f", r.Throughput),
			fmt.Sprintf("%.2f", r.AvgWait),
			fmt.Sprintf("%.2f", r.AvgTurnaround),
			fmt.Sprintf("%.2f", r.AvgResponse),
		})
	}
	cw.Flush()
	return cw.Error()
}

// logGroups maps a scheduler label to the file prefix of its logs.
var logGroups = []struct {
	scheduler string
	prefix    string
}{
	{"EP", "EP_"},
	{"RR", "RR_"},
	{"EP_RR", "EP_RR_"},
	{"case", "execution_case_"},
}

// AnalyzeDir computes a Row for every execution log in dir. Logs are
// grouped by file name prefix; a file matches the longest prefix only, so
// EP_RR_x.txt is not also counted as EP.
func AnalyzeDir(dir string) ([]Row, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	var rows []Row
	for _, g := range logGroups {
		for _, path := range matches {
			name := filepath.Base(path)
			if groupOf(name) != g.scheduler {
				continue
			}
			row, err := analyzeFile(path)
			if err != nil {
				return nil, err
			}
			row.Scheduler = g.scheduler
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func groupOf(name string) string {
	best, bestLen := "", 0
	for _, g := range logGroups {
		if strings.HasPrefix(name, g.prefix) && len(g.prefix) > bestLen {
			best, bestLen = g.scheduler, len(g.prefix)
		}
	}
	return best
}

func analyzeFile(path string) (Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return Row{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	events, err := ParseLog(f)
	if err != nil {
		return Row{}, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Debugf("Parsed %d transitions from %s", len(events), path)
	return Row{Trace: filepath.Base(path), Summary: Compute(events)}, nil
}

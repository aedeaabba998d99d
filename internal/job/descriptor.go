// Package job reads process descriptor files.
//
// A descriptor holds one process per line, with the fields
//
//	pid, arrival, processing, io_frequency, io_duration
//
// separated by ", ". Blank lines are ignored.
package job

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"ticksched/internal/sched"
)

// ErrMalformedLine is returned for a line that is not a valid descriptor.
var ErrMalformedLine = errors.New("malformed descriptor line")

const numFields = 5

// ParseFile reads and parses the descriptor file at path.
func ParseFile(path string) ([]sched.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", path, err)
	}
	defer f.Close()

	procs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Debugf("Loaded %d processes from %s", len(procs), path)
	return procs, nil
}

// Parse reads descriptors from r in order.
func Parse(r io.Reader) ([]sched.Process, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var procs []sched.Process
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return procs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != numFields {
			return nil, fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformedLine, line, numFields, len(rec))
		}

		var vals [numFields]int64
		for i, field := range rec {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: field %d: %q is not an integer", ErrMalformedLine, line, i+1, field)
			}
			vals[i] = v
		}
		procs = append(procs, sched.NewProcess(sched.PID(vals[0]), vals[1], vals[2], vals[3], vals[4]))
	}
}

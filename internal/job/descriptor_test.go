package job

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticksched/internal/sched"
)

func TestParse_ReadsDescriptorsInOrder(t *testing.T) {
	input := "15, 0, 10, 3, 2\n\n2, 4, 6, 0, 0\r\n7, 4, 1, 1, 9"

	procs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{
		sched.NewProcess(15, 0, 10, 3, 2),
		sched.NewProcess(2, 4, 6, 0, 0),
		sched.NewProcess(7, 4, 1, 1, 9),
	}, procs)
}

func TestParse_NewProcessesAreUnstarted(t *testing.T) {
	procs, err := Parse(strings.NewReader("1, 0, 5, 0, 0\n"))
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, sched.StateNew, procs[0].State)
	assert.Equal(t, int64(5), procs[0].RemainingTime)
	assert.False(t, procs[0].Started())
}

func TestParse_Empty(t *testing.T) {
	procs, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, procs)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"too few fields", "1, 0, 5\n", "line 1: want 5 fields, got 3"},
		{"not a number", "1, 0, 5, 0, 0\n2, x, 5, 0, 0\n", "line 2: field 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedLine)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("5, 0, 4, 2, 3\n"), 0o644))

	procs, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{sched.NewProcess(5, 0, 4, 2, 3)}, procs)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "unable to open file")
}

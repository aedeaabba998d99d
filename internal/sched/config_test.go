package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ticksched.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeTempYAML(t, `
policy: RR
quantum: 4
layout: plain
csv: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Policy:    "rr",
		Quantum:   4,
		OutputDir: "output_files",
		Layout:    LayoutPlain,
		CSV:       true,
		LogLevel:  "error",
	}, cfg)
}

func TestLoad_ClampsNonsense(t *testing.T) {
	path := writeTempYAML(t, `
quantum: -1
layout: fancy
output_dir: ""
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultQuantum, cfg.Quantum)
	assert.Equal(t, LayoutTable, cfg.Layout)
	assert.Equal(t, "output_files", cfg.OutputDir)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("/nonexistent/ticksched.yml")
	assert.Error(t, err)

	_, err = Load(writeTempYAML(t, "policy: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeTempYAML(t, "policy: sjf"))
	assert.ErrorContains(t, err, "unknown policy")
}

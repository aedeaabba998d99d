package sched

import (
	"fmt"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors ticksched.yml
type Config struct {
	Policy    string `yaml:"policy"`     // ep (by default) or rr
	Quantum   int    `yaml:"quantum"`    // 2 (by default), rr only
	OutputDir string `yaml:"output_dir"` // output_files (by default)
	Layout    string `yaml:"layout"`     // table (by default) or plain
	CSV       bool   `yaml:"csv"`        // also export events as CSV
	LogLevel  string `yaml:"log_level"`  // error (by default)
}

// Execution log layouts.
const (
	LayoutTable = "table"
	LayoutPlain = "plain"
)

func defaultConfig() Config {
	return Config{
		Policy:    "ep",
		Quantum:   DefaultQuantum,
		OutputDir: "output_files",
		Layout:    LayoutTable,
		LogLevel:  "error",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.sanitize()
	if !ValidPolicies[cfg.Policy] {
		return cfg, fmt.Errorf("unknown policy %q", cfg.Policy)
	}
	return cfg, nil
}

// sanity clamps
func (c *Config) sanitize() {
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	if c.Policy == "" {
		c.Policy = "ep"
	}
	if c.Quantum <= 0 {
		c.Quantum = DefaultQuantum
	}
	if c.OutputDir == "" {
		c.OutputDir = "output_files"
	}
	if c.Layout != LayoutPlain {
		c.Layout = LayoutTable
	}
	if c.LogLevel == "" {
		c.LogLevel = "error"
	}
}

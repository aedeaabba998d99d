package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ticksched/internal/job"
	"ticksched/internal/metrics"
	"ticksched/internal/report"
	"ticksched/internal/sched"
)

// options holds the CLI flags of the root command.
type options struct {
	configPath string // YAML config file
	policyName string // ep or rr
	quantum    int    // rr time slice in ticks
	outputDir  string // where execution and memory logs are written
	layout     string // execution log layout
	exportCSV  bool   // also write the transitions as CSV
	logLevel   string // log verbosity level
}

// newRootCmd builds the command that simulates one descriptor file and
// writes its logs.
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "ticksched <input_file> <case_number>",
		Short: "Discrete-time single-CPU scheduling simulator (EP and RR)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			caseNum, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("case number %q is not an integer", args[1])
			}
			cmd.SilenceUsage = true
			return simulate(cmd, cfg, args[0], caseNum)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&opts.policyName, "policy", "ep", "Dispatch policy (ep, rr)")
	cmd.Flags().IntVar(&opts.quantum, "quantum", sched.DefaultQuantum, "Round-robin time quantum (in ticks)")
	cmd.Flags().StringVar(&opts.outputDir, "out", "output_files", "Output directory for execution and memory logs")
	cmd.Flags().StringVar(&opts.layout, "layout", sched.LayoutTable, "Execution log layout (table, plain)")
	cmd.Flags().BoolVar(&opts.exportCSV, "csv", false, "Also write transitions as CSV")
	cmd.Flags().StringVar(&opts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(newAnalyzeCmd())
	return cmd
}

// loadConfig reads the config file and lets explicitly set flags win.
func (o *options) loadConfig(cmd *cobra.Command) (sched.Config, error) {
	cfg, err := sched.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("policy") {
		cfg.Policy = o.policyName
	}
	if flags.Changed("quantum") {
		cfg.Quantum = o.quantum
	}
	if flags.Changed("out") {
		cfg.OutputDir = o.outputDir
	}
	if flags.Changed("layout") {
		cfg.Layout = o.layout
	}
	if flags.Changed("csv") {
		cfg.CSV = o.exportCSV
	}
	if flags.Changed("log") {
		cfg.LogLevel = o.logLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	logrus.SetLevel(level)
	return cfg, nil
}

func simulate(cmd *cobra.Command, cfg sched.Config, inputPath string, caseNum int) error {
	procs, err := job.ParseFile(inputPath)
	if err != nil {
		return err
	}
	policy, err := sched.NewPolicy(cfg.Policy, cfg.Quantum)
	if err != nil {
		return err
	}

	res, err := sched.RunSimulation(cmd.Context(), procs, policy)
	if err != nil {
		return err
	}

	// The memory log is written under a fixed name, then renamed for the case.
	memLog := filepath.Join(cfg.OutputDir, "memory_log.txt")
	if err := report.SaveFile(memLog, func(w io.Writer) error {
		return report.WriteMemory(w, res.Memory)
	}); err != nil {
		return err
	}
	memName := filepath.Join(cfg.OutputDir, fmt.Sprintf("memory_case_%d.txt", caseNum))
	if err := os.Rename(memLog, memName); err != nil {
		return fmt.Errorf("renaming memory log: %w", err)
	}

	execName := filepath.Join(cfg.OutputDir, fmt.Sprintf("execution_case_%d.txt", caseNum))
	if err := report.SaveFile(execName, func(w io.Writer) error {
		return report.WriteExecution(w, res.Events, cfg.Layout)
	}); err != nil {
		return err
	}

	if cfg.CSV {
		csvName := filepath.Join(cfg.OutputDir, fmt.Sprintf("execution_case_%d.csv", caseNum))
		if err := report.SaveFile(csvName, func(w io.Writer) error {
			return report.WriteCSV(w, res.Events)
		}); err != nil {
			return err
		}
	}

	m := metrics.Compute(res.Events)
	logrus.Infof("%s case %d: %d processes, throughput=%.4f, avg wait=%.2f, avg turnaround=%.2f, avg I/O response=%.2f",
		res.Policy, caseNum, m.NumProcesses, m.Throughput, m.AvgWait, m.AvgTurnaround, m.AvgResponse)
	return nil
}

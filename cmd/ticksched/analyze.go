package main

import (
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ticksched/internal/metrics"
	"ticksched/internal/report"
)

// newAnalyzeCmd builds the command that summarizes every execution log in
// a directory.
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <dir>",
		Short: "Compute scheduling metrics for the execution logs in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			dir := args[0]
			rows, err := metrics.AnalyzeDir(dir)
			if err != nil {
				return err
			}
			out := filepath.Join(dir, "metrics_summary.csv")
			if err := report.SaveFile(out, func(w io.Writer) error {
				return metrics.WriteSummary(w, rows)
			}); err != nil {
				return err
			}
			logrus.Debugf("Summarized %d logs", len(rows))
			cmd.Printf("Metrics written to %s\n", out)
			return nil
		},
	}
}

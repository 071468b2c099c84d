package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opd-ai/nacl/bench"
)

func benchCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure latency and throughput of every primitive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := bench.NewMonitor()
			if err := bench.Run(cmd.Context(), cfg, m); err != nil {
				return err
			}

			report := m.Report()
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := report.ExportJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "OPERATION\tCALLS\tAVG(us)\tMIN(us)\tMAX(us)\tMB/s")
			for _, op := range report.Operations {
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
					op.Operation, op.Calls, op.AverageLatency, op.MinLatency, op.MaxLatency,
					op.ThroughputBytesPerSec/1e6)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&cfg.MessageSize, "size", cfg.MessageSize, "message size in bytes")
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "calls per operation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

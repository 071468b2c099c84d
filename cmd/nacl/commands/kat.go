package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opd-ai/nacl/kat"
)

// kat FILE: replay an Ed25519 sign.input style file.
func katCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kat FILE",
		Short: "Check an Ed25519 known-answer file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			report, err := kat.RunSign(cmd.Context(), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, failure := range report.Failures {
				fmt.Fprintf(out, "FAIL %v\n", failure)
			}
			fmt.Fprintf(out, "%d records, %d passed, %d failed\n", report.Records, report.Passed, report.Failed())
			if report.Failed() > 0 {
				return fmt.Errorf("%d of %d records failed", report.Failed(), report.Records)
			}
			return nil
		},
	}
	return cmd
}

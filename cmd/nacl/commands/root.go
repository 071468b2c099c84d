package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opd-ai/nacl/kat"
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	root := &cobra.Command{
		Use:          "nacl",
		Short:        "HMAC-SHA-512-256, Ed25519 and XSalsa20 from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Apply()
		},
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")

	root.AddCommand(
		authCmd(), verifyCmd(),
		keygenCmd(), signCmd(), openCmd(),
		streamCmd(), xorCmd(),
		katCmd(), benchCmd(),
	)
	return root
}

// decodeFlag decodes a required hex flag.
func decodeFlag(name, value string) ([]byte, error) {
	b, err := kat.DecodeHex(name, value)
	if err != nil {
		return nil, fmt.Errorf("--%s: invalid hex", name)
	}
	return b, nil
}

// readMessage returns --message when it was given, and hex read from stdin
// otherwise.
func readMessage(cmd *cobra.Command, message string) ([]byte, error) {
	if cmd.Flags().Changed("message") {
		return decodeFlag("message", message)
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	b, err := kat.DecodeHex("stdin", strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, fmt.Errorf("stdin: invalid hex")
	}
	return b, nil
}

func printHex(cmd *cobra.Command, b []byte) {
	fmt.Fprintf(cmd.OutOrStdout(), "%x\n", b)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opd-ai/nacl"
)

func authCmd() *cobra.Command {
	var key, message string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Compute the authenticator of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := decodeFlag("key", key)
			if err != nil {
				return err
			}
			m, err := readMessage(cmd, message)
			if err != nil {
				return err
			}
			tag, err := nacl.Auth(m, k)
			if err != nil {
				return err
			}
			printHex(cmd, tag)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "32-byte key (hex)")
	cmd.Flags().StringVar(&message, "message", "", "message (hex, default stdin)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func verifyCmd() *cobra.Command {
	var key, tag, message string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the authenticator of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := decodeFlag("key", key)
			if err != nil {
				return err
			}
			t, err := decodeFlag("tag", tag)
			if err != nil {
				return err
			}
			m, err := readMessage(cmd, message)
			if err != nil {
				return err
			}
			if err := nacl.AuthVerify(t, m, k); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "32-byte key (hex)")
	cmd.Flags().StringVar(&tag, "tag", "", "32-byte authenticator (hex)")
	cmd.Flags().StringVar(&message, "message", "", "message (hex, default stdin)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("tag")
	return cmd
}

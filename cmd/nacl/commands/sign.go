package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opd-ai/nacl"
	"github.com/opd-ai/nacl/crypto"
)

// keygen [--seed HEX]: print "public: HEX" and "secret: HEX".
func keygenCmd() *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 keypair, or derive one from a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub, priv []byte
			var err error
			if cmd.Flags().Changed("seed") {
				s, derr := decodeFlag("seed", seed)
				if derr != nil {
					return derr
				}
				pub, priv, err = nacl.SignPublickey(s)
				_ = crypto.SecureWipe(s)
			} else {
				pub, priv, err = nacl.SignKeypair()
			}
			if err != nil {
				return err
			}
			defer crypto.ZeroBytes(priv)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "public: %x\n", pub)
			fmt.Fprintf(out, "secret: %x\n", priv)
			return nil
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "32-byte seed (hex, default random)")
	return cmd
}

func signCmd() *cobra.Command {
	var key, message string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message, printing signature||message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := decodeFlag("key", key)
			if err != nil {
				return err
			}
			defer crypto.ZeroBytes(k)

			m, err := readMessage(cmd, message)
			if err != nil {
				return err
			}
			sm, err := nacl.Sign(m, k)
			if err != nil {
				return err
			}
			printHex(cmd, sm)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "64-byte secret key (hex)")
	cmd.Flags().StringVar(&message, "message", "", "message (hex, default stdin)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func openCmd() *cobra.Command {
	var key, message string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Verify a signed message and print the message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := decodeFlag("key", key)
			if err != nil {
				return err
			}
			sm, err := readMessage(cmd, message)
			if err != nil {
				return err
			}
			m, err := nacl.SignOpen(sm, k)
			if err != nil {
				return err
			}
			printHex(cmd, m)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "32-byte public key (hex)")
	cmd.Flags().StringVar(&message, "message", "", "signed message (hex, default stdin)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opd-ai/nacl"
	"github.com/opd-ai/nacl/limits"
	"github.com/opd-ai/nacl/stream"
)

func streamCmd() *cobra.Command {
	var nonce, key string
	var length int
	var digest bool

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Print XSalsa20 keystream",
		Long: "Print length bytes of XSalsa20 keystream as hex. With --sha256 only the\n" +
			"SHA-256 of the raw keystream is printed, and the keystream is never held\n" +
			"in memory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := decodeFlag("nonce", nonce)
			if err != nil {
				return err
			}
			k, err := decodeFlag("key", key)
			if err != nil {
				return err
			}
			if err := limits.ValidateStreamLength(0, "length", length); err != nil {
				return err
			}

			c, err := stream.NewCipher(n, k)
			if err != nil {
				return err
			}
			defer c.Wipe()

			out := cmd.OutOrStdout()
			if digest {
				h := sha256.New()
				if _, err := io.CopyN(h, c, int64(length)); err != nil {
					return err
				}
				fmt.Fprintf(out, "%x\n", h.Sum(nil))
				return nil
			}

			if _, err := io.CopyN(hex.NewEncoder(out), c, int64(length)); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&nonce, "nonce", "", "24-byte nonce (hex)")
	cmd.Flags().StringVar(&key, "key", "", "32-byte key (hex)")
	cmd.Flags().IntVar(&length, "length", 0, "keystream length in bytes")
	cmd.Flags().BoolVar(&digest, "sha256", false, "print the SHA-256 of the keystream instead")
	_ = cmd.MarkFlagRequired("nonce")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("length")
	return cmd
}

func xorCmd() *cobra.Command {
	var nonce, key, message string

	cmd := &cobra.Command{
		Use:   "xor",
		Short: "XOR a message with XSalsa20 keystream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := decodeFlag("nonce", nonce)
			if err != nil {
				return err
			}
			k, err := decodeFlag("key", key)
			if err != nil {
				return err
			}
			m, err := readMessage(cmd, message)
			if err != nil {
				return err
			}
			out, err := nacl.StreamXOR(m, n, k)
			if err != nil {
				return err
			}
			printHex(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&nonce, "nonce", "", "24-byte nonce (hex)")
	cmd.Flags().StringVar(&key, "key", "", "32-byte key (hex)")
	cmd.Flags().StringVar(&message, "message", "", "message (hex, default stdin)")
	_ = cmd.MarkFlagRequired("nonce")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

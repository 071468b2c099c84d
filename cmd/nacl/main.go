package main

import (
	"os"

	"github.com/opd-ai/nacl/cmd/nacl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

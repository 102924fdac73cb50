package main

import (
	"os"

	"github.com/thenoetrevino/lanes/cmd"
	"github.com/thenoetrevino/lanes/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

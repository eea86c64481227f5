// Package main is the entry point for the stepform CLI.
//
// stepform walks the user through a three-step form (personal details,
// address, confirmation) in the terminal. Input is saved as a draft after
// every change, so quitting and running it again picks up where the user
// left off.
//
// Commands: run, draft, version, completion.
//
// For detailed usage information, run:
//
//	stepform --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/stepform/cmd/stepform/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command tldr-langs prints the languages a tldr client searches, in priority order.
//
// Usage:
//
//	tldr-langs [--config FILE] [--color auto|always|never] [--quiet] [--dirs] [--unique] [--names]
//	tldr-langs page FILE...
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(&env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		lookup: os.LookupEnv,
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zeusync/levelcheck/internal/core/observability/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. The logger is
// flushed before returning because os.Exit skips deferred calls in main.
func run(args []string, stdout, stderr io.Writer) int {
	defer func() { _ = log.Provide().Sync() }()

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

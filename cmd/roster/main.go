package main

import (
	"fmt"
	"os"

	"github.com/rshade/roster/internal/cli"
	"github.com/rshade/roster/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its outcome to an exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Command seep simulates ground water seeping through a clay scan.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/seep/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}

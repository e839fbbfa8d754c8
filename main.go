// Command seqscan exposes the seqscan kernels — monotonic-stack scans,
// top-K selection, island counting — as a command-line harness.
package main

import (
	"os"

	"github.com/katalvlaran/seqscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

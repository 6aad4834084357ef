// Command lvlkata runs the exercises of the module from the command line:
// list them, run one on flag inputs, verify YAML case files, evaluate an
// expression or sort integers with a chosen algorithm.
//
//	lvlkata list
//	lvlkata run two-sum --nums 2,7,11,15 --target 9
//	lvlkata verify catalog/testdata/*.yaml
//	lvlkata calc "2*(3+-4)"
//	lvlkata sort --algo heap 5 2 9 1
//
// Any failure, including a failing case, exits with status 1.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("lvlkata failed", "error", err)
		os.Exit(1)
	}
}

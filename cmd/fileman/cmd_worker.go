package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/fileman/internal/worker"
)

// workerCmd is the entry point for spawned worker processes. The parent
// invocation re-executes this binary with "worker <op> [args...]" and reads
// the outcome from the exit status: 0 on success, nonzero with a diagnostic
// on stderr otherwise.
var workerCmd = &cobra.Command{
	Use:                "worker <operation> [args...]",
	Hidden:             true,
	Args:               cobra.MinimumNArgs(1),
	SilenceUsage:       true,
	SilenceErrors:      true,
	DisableFlagParsing: true, // arbitrary append content must not be parsed as flags
	RunE: func(cmd *cobra.Command, args []string) error {
		return worker.Dispatch(args[0], args[1:]...)
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

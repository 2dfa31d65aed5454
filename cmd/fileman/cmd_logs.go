package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fileman/internal/cli"
)

var showLogsCmd = &cobra.Command{
	Use:   "showLogs",
	Short: "Display operation logs",
	Long: `Display the operation log.

The log is read under a shared advisory lock so the output is a
consistent snapshot even while other invocations are appending.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.ShowLogs()
	},
}

func init() {
	rootCmd.AddCommand(showLogsCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fileman/internal/cli"
	"github.com/zoro11031/fileman/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "fileman",
	Short: "Basic filesystem management tool",
	Long: `A command-line utility for basic filesystem management.

Commands cover creating, listing and deleting directories, creating,
reading, appending to and deleting files, and an operation log shared
safely between concurrent invocations.

Mutating operations run in isolated worker processes and appends are
serialized with advisory file locks, so independent invocations never
corrupt or interleave each other's writes.

Run without arguments to launch the interactive shell.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runShell,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the interactive shell",
	Long:  `Launch the interactive shell for running commands in a session.`,
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	shell := cli.NewShell(ctx)
	return shell.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

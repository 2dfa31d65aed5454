package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fileman/internal/cli"
)

var createFileCmd = &cobra.Command{
	Use:   "createFile <fileName>",
	Short: "Create a new file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.CreateFile(args[0])
	},
}

var readFileCmd = &cobra.Command{
	Use:   "readFile <fileName>",
	Short: "Read a file's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.ReadFile(args[0])
	},
}

var appendToFileCmd = &cobra.Command{
	Use:   "appendToFile <fileName> <content>",
	Short: "Append content to a file",
	Long: `Append content to an existing file.

The append runs in an isolated worker process holding an exclusive
advisory lock on the file, so concurrent invocations serialize cleanly
and never interleave their writes. If the file does not already end in
a newline, one is inserted before the new content.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.AppendToFile(args[0], args[1])
	},
}

var deleteFileCmd = &cobra.Command{
	Use:   "deleteFile <fileName>",
	Short: "Delete a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.DeleteFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(createFileCmd)
	rootCmd.AddCommand(readFileCmd)
	rootCmd.AddCommand(appendToFileCmd)
	rootCmd.AddCommand(deleteFileCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fileman/internal/cli"
)

var createDirCmd = &cobra.Command{
	Use:   "createDir <folderName>",
	Short: "Create a new directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.CreateDir(args[0])
	},
}

var listDirCmd = &cobra.Command{
	Use:   "listDir <folderName>",
	Short: "List all files in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.ListDir(args[0])
	},
}

var listByExtCmd = &cobra.Command{
	Use:   "listFilesByExtension <folderName> <extension>",
	Short: "List files with a specific extension",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.ListFilesByExtension(args[0], args[1])
	},
}

var deleteDirCmd = &cobra.Command{
	Use:   "deleteDir <folderName>",
	Short: "Delete an empty directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewContext()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return ctx.DeleteDir(args[0])
	},
}

func init() {
	rootCmd.AddCommand(createDirCmd)
	rootCmd.AddCommand(listDirCmd)
	rootCmd.AddCommand(listByExtCmd)
	rootCmd.AddCommand(deleteDirCmd)
}

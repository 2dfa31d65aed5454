package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fileman/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fileman configuration",
	Long: `Manage persistent settings stored in ~/.fileman.conf.

Keys:
  LOG_FILE          - Operation log path (default: log.txt)
  DIR_PERMS         - Mode for new directories (default: 0755)
  FILE_PERMS        - Mode for new files (default: 0644)
  WORKER_ISOLATION  - Run mutations in worker processes (default: true)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all configured values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New("")
		for key, value := range cfg.GetAll() {
			fmt.Printf("%s=%s\n", key, value)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configured value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New("")
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New("")
		return cfg.Set(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/poulpybifle/buslog/pkg/config"
	"github.com/poulpybifle/buslog/pkg/style"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user configuration",
	Long: `Read and write user-level configuration stored in ` + "`~/.buslog.yaml`" + `.

Keys:
  author  Default annotation author
  agent   Default AI agent for analyze
  port    Default port for serve

Environment variables with the BUSLOG_ prefix override the file,
e.g. BUSLOG_AUTHOR=alice.

Examples:
  buslog config list
  buslog config get author
  buslog config set author alice
  buslog config set port 3000`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(args[0])
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Println(style.D("(not set)"))
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, style.C(style.Cyan, value))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config values",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("\n%s\n", style.B(style.C(style.Cyan, "buslog config")))
		fmt.Printf("%s\n\n", style.D(config.Path()))

		values := config.All()
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := values[k]
			if v == "" {
				fmt.Printf("  %-8s %s\n", k, style.D("(not set)"))
			} else {
				fmt.Printf("  %-8s %s\n", k, style.C(style.Green, v))
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

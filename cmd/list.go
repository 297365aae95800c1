package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poulpybifle/buslog/pkg/style"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documented workflows",
	Long: `List all workflow documents in the project.

Examples:
  buslog list`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	workflows, err := st.ListWorkflows()
	if err != nil {
		return err
	}

	if len(workflows) == 0 {
		fmt.Println("No workflows yet. Create one with: buslog add <slug>")
		return nil
	}

	// Print table header
	fmt.Printf("%s%s%-30s | %-34s | Description%s\n", style.Bold, style.Cyan, "Workflow", "File", style.Reset)
	fmt.Printf("%s-------------------------------+------------------------------------+------------------------------%s\n", style.Cyan, style.Reset)

	for _, wf := range workflows {
		desc := wf.Description
		if desc == "" {
			desc = style.D("(no description)")
		} else {
			desc = truncate(desc, 50)
		}
		fmt.Printf("%-30s | %-34s | %s\n", truncate(wf.Name, 30), truncate(wf.File, 34), desc)
	}

	fmt.Printf("\n%d workflow(s)\n", len(workflows))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poulpybifle/buslog/pkg/style"
)

var addCmd = &cobra.Command{
	Use:   "add <slug>",
	Short: "Create a new workflow document",
	Long: `Create a workflow documentation file from the template.

The slug becomes the filename and is title-cased for the document
heading: "user-authentication" becomes "User Authentication".
Slugs use lowercase letters, digits and hyphens.

Examples:
  buslog add user-authentication
  buslog add checkout
  buslog add order-fulfillment`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	slug := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}

	path, err := st.CreateWorkflow(slug)
	if err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n", style.C(style.Green, "✓"), style.C(style.Cyan, path))
	fmt.Printf("\nEdit the file to document the workflow, or run %s to\ngenerate an AI prompt that fills it in from the codebase.\n", style.C(style.Cyan, "buslog analyze"))
	return nil
}

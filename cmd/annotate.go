package cmd

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/poulpybifle/buslog/pkg/config"
	"github.com/poulpybifle/buslog/pkg/style"
)

var (
	annotateMessageFlag string
	annotateAuthorFlag  string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <slug>",
	Short: "Attach a note to a workflow",
	Long: `Append a team annotation to a workflow document.

The author defaults to the configured author (buslog config set
author <name>) or the OS username.

Examples:
  buslog annotate checkout -m "Stripe webhook retries are not idempotent"
  buslog annotate checkout -m "Reviewed for Q3 audit" -a alice`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateMessageFlag, "message", "m", "", "Annotation text (required)")
	annotateCmd.Flags().StringVarP(&annotateAuthorFlag, "author", "a", "", "Annotation author")
	annotateCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	slug := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}

	author := annotateAuthorFlag
	if author == "" {
		if cfg, err := config.Load(); err == nil && cfg.Author != "" {
			author = cfg.Author
		}
	}
	if author == "" {
		if u, err := user.Current(); err == nil {
			author = u.Username
		} else {
			author = "anonymous"
		}
	}

	entry, err := st.AppendAnnotation(slug, annotateMessageFlag, author)
	if err != nil {
		return err
	}

	fmt.Printf("%s Annotated %s as %s (%s)\n",
		style.C(style.Green, "✓"), style.C(style.Cyan, slug), style.C(style.Cyan, entry.Author), entry.Date)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	blog "github.com/poulpybifle/buslog/pkg/log"
	"github.com/poulpybifle/buslog/pkg/style"
)

var (
	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "buslog",
	Short: "Living business-logic documentation for your codebase",
	Long: `buslog keeps a .business-logic/ directory of workflow documentation
alongside your code.

Scaffold workflow files, annotate them with team knowledge, generate an
AI analysis prompt to map the business logic of a codebase, and browse
everything in a local web UI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		blog.SetVerbose(verbose)
		blog.SetQuiet(quiet)
	},
}

func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.C(style.Red, "error:"), err)
		os.Exit(1)
	}
}

func init() {
	// Setup Typer-style help formatting
	style.SetupHelp(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poulpybifle/buslog/pkg/store"
	"github.com/poulpybifle/buslog/pkg/style"
)

var (
	initNameFlag string
	initDirFlag  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize business logic documentation",
	Long: `Initialize the .business-logic/ documentation directory.

Creates:
  .business-logic/config.json   Project configuration
  .business-logic/index.md      Documentation landing page
  .business-logic/workflows/    One markdown file per workflow
  .business-logic/annotations/  Team notes attached to workflows

Run this once per repository. The project name defaults to the
directory name; detected languages are recorded in the config.

Examples:
  buslog init
  buslog init --name "Payment Service"
  buslog init --dir /path/to/repo`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initNameFlag, "name", "", "Project name (default: directory name)")
	initCmd.Flags().StringVar(&initDirFlag, "dir", ".", "Project root directory")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(initDirFlag)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	st := store.New(dir)
	cfg, err := st.Initialize(initNameFlag)
	if err != nil {
		return err
	}

	fmt.Printf("%s Initialized %s\n", style.C(style.Green, "✓"), style.C(style.Cyan, cfg.ProjectName))
	fmt.Printf("  %s\n", style.D(st.Dir()))
	if len(cfg.Languages) > 0 {
		fmt.Printf("  Languages: %s\n", style.C(style.Cyan, strings.Join(cfg.Languages, ", ")))
	}
	fmt.Printf("\nNext: %s\n", style.C(style.Cyan, "buslog add <workflow-slug>"))
	return nil
}

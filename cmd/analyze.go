package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poulpybifle/buslog/pkg/ai"
	"github.com/poulpybifle/buslog/pkg/cache"
	blog "github.com/poulpybifle/buslog/pkg/log"
	"github.com/poulpybifle/buslog/pkg/prompt"
	"github.com/poulpybifle/buslog/pkg/signal"
	"github.com/poulpybifle/buslog/pkg/style"
)

var (
	analyzeOutputFlag  string
	analyzeAgentFlag   string
	analyzeNoCacheFlag bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Generate an AI analysis prompt for the codebase",
	Long: `Generate a prompt instructing an AI agent to map the business
logic of the codebase into workflow documents.

The prompt includes the project configuration and detected entry
points. By default it is printed to stdout so it can be pasted into
any agent. With --agent the prompt is sent directly to the given
model and the response is printed instead.

Examples:
  buslog analyze
  buslog analyze -o analysis-prompt.md
  buslog analyze --agent claude-sonnet-4
  buslog analyze --agent gemini-2.5-flash -o analysis.md`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutputFlag, "output", "o", "", "Write output to file instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeAgentFlag, "agent", "", "Run the prompt through an AI agent (claude-cli, gemini-cli, or a model name)")
	analyzeCmd.Flags().BoolVar(&analyzeNoCacheFlag, "no-cache", false, "Skip the response cache")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	gen, err := prompt.NewGenerator(st)
	if err != nil {
		return err
	}

	text, err := gen.Generate()
	if err != nil {
		return err
	}

	output := text

	if analyzeAgentFlag != "" {
		if !ai.IsModelSupported(analyzeAgentFlag) {
			return fmt.Errorf("unsupported agent %q (see 'buslog config set agent' for options)", analyzeAgentFlag)
		}

		key := cache.Key(analyzeAgentFlag, text)
		if !analyzeNoCacheFlag && cache.Exists(key) {
			if cached, err := cache.Read(key); err == nil {
				fmt.Fprintln(os.Stderr, style.D("Using cached analysis (run with --no-cache to refresh)"))
				return writeAnalyzeOutput(cached)
			}
		}

		ctx, cancel := signal.NotifyContext()
		defer cancel()

		client, err := ai.NewClient(ctx, analyzeAgentFlag)
		if err != nil {
			return err
		}
		defer client.Close()

		err = withSpinner(fmt.Sprintf("Analyzing with %s...", analyzeAgentFlag), func() error {
			output, err = client.GenerateContent(ctx, text)
			return err
		})
		if err != nil {
			return fmt.Errorf("agent error: %w", err)
		}

		if err := cache.Write(key, output); err != nil {
			blog.Warn("could not cache analysis", "error", err)
		}
	}

	return writeAnalyzeOutput(output)
}

func writeAnalyzeOutput(output string) error {
	if analyzeOutputFlag != "" {
		if err := os.WriteFile(analyzeOutputFlag, []byte(output), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", analyzeOutputFlag, err)
		}
		fmt.Printf("%s Saved to %s\n", style.C(style.Green, "✓"), style.C(style.Cyan, analyzeOutputFlag))
		return nil
	}

	fmt.Println(output)
	return nil
}

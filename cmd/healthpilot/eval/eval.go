package eval

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"healthpilot/internal/config"
	inteval "healthpilot/internal/eval"
	"healthpilot/internal/llm"
	"healthpilot/internal/prompt"

	"github.com/spf13/cobra"
)

var variants []string

var Cmd = &cobra.Command{
	Use:   "eval [query]",
	Short: "Compare prompt variants for a query and score the responses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		llmCfg, ok := cfg.LLMs[cfg.DefaultLLM]
		if !ok {
			return fmt.Errorf("default LLM %q not found in config", cfg.DefaultLLM)
		}
		provider := llm.NewOpenAI(llmCfg.BaseURL, llmCfg.APIKey, llmCfg.Model)

		query := strings.Join(args, " ")
		results, err := inteval.NewRunner(provider).Compare(cmd.Context(), query, variants)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VARIANT\tSCORE\tWORDS\tSNIPPET")
		for _, c := range results {
			snippet := strings.ReplaceAll(c.Record.ResponseSnippet, "\n", " ")
			if len(snippet) > 60 {
				snippet = snippet[:60] + "..."
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", c.Variant, c.Record.ReasoningScore, c.Record.LengthWords, snippet)
		}
		return tw.Flush()
	},
}

func init() {
	Cmd.Flags().StringSliceVarP(&variants, "variant", "v", nil,
		"prompt variants to compare (default: "+strings.Join(prompt.Variants(), ", ")+")")
}

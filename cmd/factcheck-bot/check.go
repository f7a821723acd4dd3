// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/factcheck-bot/internal/claim"
	"github.com/pdiddy/factcheck-bot/internal/rank"
	"github.com/pdiddy/factcheck-bot/internal/search"
	"github.com/pdiddy/factcheck-bot/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Run the fact-checking pipeline once on the given text",
	Long: `Check runs the claim extraction, search, and ranking stages on the given
text and prints the scored sources. Useful for trying out credentials and
prompts without a running webhook.

With --analyze, only the claim analysis (key claims, dates, numbers,
names, suggested queries) is printed and no network calls are made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// checkResult is the structured output of a one-shot pipeline run.
type checkResult struct {
	Query   string               `json:"query" yaml:"query"`
	Refs    []types.PostRef      `json:"refs,omitempty" yaml:"refs,omitempty"`
	Sources []types.ScoredSource `json:"sources" yaml:"sources"`
}

func init() {
	checkCmd.Flags().Bool("analyze", false, "print claim analysis only, no network calls")
	checkCmd.Flags().Bool("json", false, "print results as JSON")
	checkCmd.Flags().Bool("yaml", false, "print results as YAML")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("no text to check")
	}

	cfg := loadConfig()
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	if analyze, _ := cmd.Flags().GetBool("analyze"); analyze {
		return printResult(cmd, claim.Analyze(text))
	}

	claimText, refs := claim.ExtractRefs(text)
	query := claim.BuildQuery(claimText, cfg.Pipeline.MaxQueryLen)
	if query == "" {
		return fmt.Errorf("could not build a search query from the text")
	}

	var backend search.Backend
	if gb := search.NewGoogleBackend(cfg.Search, &http.Client{Timeout: cfg.Search.Timeout}); gb != nil {
		backend = gb
	}
	candidates := search.Retrieve(cmd.Context(), backend, query, cfg.Search.MaxResults, logger)
	if len(candidates) == 0 {
		return fmt.Errorf("search returned no results for %q", query)
	}

	var scorer rank.Backend
	if ob := rank.NewOpenAIBackend(cfg.Scoring, &http.Client{Timeout: cfg.Scoring.Timeout}); ob != nil {
		scorer = ob
	}
	ranked := rank.Rank(cmd.Context(), scorer, claimText, candidates, cfg.Scoring, logger)

	result := checkResult{Query: query, Refs: refs, Sources: ranked}
	if useJSON, _ := cmd.Flags().GetBool("json"); useJSON {
		return printResult(cmd, result)
	}
	if useYAML, _ := cmd.Flags().GetBool("yaml"); useYAML {
		return printResult(cmd, result)
	}

	fmt.Printf("Query: %s\n", result.Query)
	for _, r := range result.Refs {
		fmt.Printf("Ref:   t.me/%s/%d\n", r.Channel, r.ID)
	}
	fmt.Println()
	for i, s := range result.Sources {
		fmt.Printf("%d. [%d%%] %s\n   %s\n", i+1, s.Score, s.Title, s.Link)
		if s.Snippet != "" {
			fmt.Printf("   %s\n", s.Snippet)
		}
	}
	return nil
}

// printResult writes v to stdout as JSON or YAML per the command flags,
// defaulting to YAML for structured-only output such as --analyze.
func printResult(cmd *cobra.Command, v any) error {
	if useJSON, _ := cmd.Flags().GetBool("json"); useJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

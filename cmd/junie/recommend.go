package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cornjebus/junie/internal/explain"
	"github.com/Cornjebus/junie/internal/observability"
	"github.com/Cornjebus/junie/internal/recommend"
	"github.com/Cornjebus/junie/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend paths for a profile",
	Long:  "Runs the full pipeline for a profile JSON file: embed, retrieve, score, rank, explain. Prints the ranked recommendations as JSON, or as formatted boxes with --verbose.",
	RunE:  runRecommend,
}

var (
	recommendProfilePath string
	recommendConfigPath  string
	recommendTopN        int
	recommendVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfilePath, "profile", "p", "", "Path to input UserProfile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendConfigPath, "config", "c", "", "Path to config JSON file")
	recommendCmd.Flags().IntVarP(&recommendTopN, "top-n", "n", 0, "Maximum recommendations to return (default from config)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted output instead of JSON")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(recommendConfigPath)
	if err != nil {
		return err
	}

	// 1. Load profile
	data, err := os.ReadFile(recommendProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", recommendProfilePath, err)
	}
	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}

	// 2. Wire collaborators
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	templates, closeStore, err := newTemplateStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	engine := recommend.NewEngine(
		newEmbedder(client, cfg),
		templates,
		explain.NewGenerator(client),
		recommend.Config{
			SimilarityThreshold: cfg.SimilarityThreshold,
			RetrievalLimit:      cfg.RetrievalLimit,
		},
	)

	// 3. Run the pipeline
	topN := cfg.TopN
	if cmd.Flags().Changed("top-n") {
		topN = recommendTopN
	}
	result, err := engine.Recommend(ctx, &profile, topN)
	if err != nil {
		return err
	}

	// 4. Print
	if recommendVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(&profile)
		printer.PrintResult(result)
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

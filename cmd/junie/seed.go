package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cornjebus/junie/internal/db"
	"github.com/Cornjebus/junie/internal/embedding"
	"github.com/Cornjebus/junie/internal/observability"
	"github.com/Cornjebus/junie/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed path templates into the store",
	Long:  "Validates a JSON file of path templates, embeds each one, and inserts them into the database. Invalid records are quarantined and reported, never inserted.",
	RunE:  runSeed,
}

var (
	seedFile       string
	seedConfigPath string
	seedDryRun     bool
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to input templates JSON file (required)")
	seedCmd.Flags().StringVarP(&seedConfigPath, "config", "c", "", "Path to config JSON file")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate and report without embedding or inserting")

	if err := seedCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(seedConfigPath)
	if err != nil {
		return err
	}

	// 1. Validate records
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read templates file %s: %w", seedFile, err)
	}
	templates, quarantined, err := store.DecodeTemplates(data)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintQuarantined(quarantined)

	if seedDryRun {
		fmt.Printf("Dry run: %d valid, %d quarantined, nothing inserted\n", len(templates), len(quarantined))
		return nil
	}
	if len(templates) == 0 {
		return fmt.Errorf("no valid templates to seed")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required for seeding")
	}

	// 2. Embed
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	for _, t := range templates {
		if len(t.Embedding) > 0 {
			continue
		}
		vec, err := client.EmbedText(ctx, embedding.TemplateText(t))
		if err != nil {
			return fmt.Errorf("failed to embed template %s: %w", t.Title, err)
		}
		t.Embedding = vec
	}

	// 3. Insert
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	for _, t := range templates {
		if err := database.InsertTemplate(ctx, t); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d templates (%d quarantined)\n", len(templates), len(quarantined))
	return nil
}

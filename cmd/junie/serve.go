package main

import (
	"github.com/spf13/cobra"

	"github.com/Cornjebus/junie/internal/db"
	"github.com/Cornjebus/junie/internal/explain"
	"github.com/Cornjebus/junie/internal/recommend"
	"github.com/Cornjebus/junie/internal/server"
	"github.com/Cornjebus/junie/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for profiles, templates, and recommendations.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to config JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// Profile and catalog endpoints need the database; without one the
	// engine still serves POST /recommend from the templates file or the
	// mock catalog.
	var templates store.TemplateStore
	var profiles server.ProfileStore
	var catalog server.TemplateCatalog
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		templates, profiles, catalog = database, database, database
	} else {
		var closeStore func()
		templates, closeStore, err = newTemplateStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()
	}

	engine := recommend.NewEngine(
		newEmbedder(client, cfg),
		templates,
		explain.NewGenerator(client),
		recommend.Config{
			SimilarityThreshold: cfg.SimilarityThreshold,
			RetrievalLimit:      cfg.RetrievalLimit,
		},
	)

	srv := server.New(server.Config{Port: cfg.Port, TopN: cfg.TopN}, engine, profiles, catalog)
	return srv.Start()
}

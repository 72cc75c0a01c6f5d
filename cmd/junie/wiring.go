package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Cornjebus/junie/internal/config"
	"github.com/Cornjebus/junie/internal/db"
	"github.com/Cornjebus/junie/internal/embedding"
	"github.com/Cornjebus/junie/internal/llm"
	"github.com/Cornjebus/junie/internal/scoring"
	"github.com/Cornjebus/junie/internal/store"
)

const embedCacheTTL = 24 * time.Hour

// resolveConfig layers a config file (optional), environment variables, and
// built-in defaults, in that precedence order.
func resolveConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:                8080,
		TopN:                scoring.DefaultTopN,
		SimilarityThreshold: store.DefaultThreshold,
		RetrievalLimit:      store.DefaultLimit,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLLMClient builds the Gemini client from the resolved configuration.
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	modelCfg := llm.DefaultConfig()
	if cfg.EmbeddingModel != "" {
		modelCfg = modelCfg.WithEmbeddingModel(cfg.EmbeddingModel)
	}
	return llm.NewClient(ctx, modelCfg, cfg.APIKey)
}

// newEmbedder wraps the client with a Redis cache when one is configured.
func newEmbedder(client llm.Client, cfg config.Config) *embedding.ClientEmbedder {
	var cache embedding.Cache
	if cfg.RedisAddr != "" {
		cache = embedding.NewRedisCache(cfg.RedisAddr, embedCacheTTL)
	}
	return embedding.NewEmbedder(client, cache)
}

// newTemplateStore picks the template source: PostgreSQL when a database URL
// is configured, otherwise an in-memory store loaded from the templates file.
// With neither, the store is empty and every request takes the mock fallback.
func newTemplateStore(ctx context.Context, cfg config.Config) (store.TemplateStore, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return database, database.Close, nil
	}

	mem := store.NewMemoryStore()
	if cfg.TemplatesFile != "" {
		if err := loadTemplatesFile(mem, cfg.TemplatesFile); err != nil {
			return nil, nil, err
		}
	}
	return mem, func() {}, nil
}

// loadTemplatesFile fills an in-memory store from a JSON template file.
// Records without embeddings cannot be searched and are skipped with a
// warning.
func loadTemplatesFile(mem *store.MemoryStore, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read templates file %s: %w", path, err)
	}

	templates, quarantined, err := store.DecodeTemplates(data)
	if err != nil {
		return err
	}
	for _, q := range quarantined {
		log.Printf("skipping invalid template %d (%s): %v", q.Index, q.Title, q.Reason)
	}

	for _, t := range templates {
		if len(t.Embedding) == 0 {
			log.Printf("skipping template %s: no embedding (run 'junie seed' to embed)", t.Title)
			continue
		}
		if err := mem.Add(t); err != nil {
			return fmt.Errorf("failed to load template %s: %w", t.Title, err)
		}
	}
	return nil
}

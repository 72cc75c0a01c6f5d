// Package recommend orchestrates the recommendation pipeline: validate the
// profile, embed it, retrieve candidate templates, score, rank, and explain,
// with a fixed mock-catalog fallback when no real templates are available.
package recommend

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/Cornjebus/junie/internal/catalog"
	"github.com/Cornjebus/junie/internal/embedding"
	"github.com/Cornjebus/junie/internal/explain"
	"github.com/Cornjebus/junie/internal/scoring"
	"github.com/Cornjebus/junie/internal/store"
	"github.com/Cornjebus/junie/internal/types"
)

// MinDreamLength is the minimum number of characters a dream must have.
// Mirrors the onboarding flow's own validation, re-checked here so the
// engine never scores against garbage input.
const MinDreamLength = 20

// Explainer produces the why-you bullets for one selected candidate.
type Explainer interface {
	Explain(ctx context.Context, tmpl *types.PathTemplate, profile *types.UserProfile, scores types.Scores) []string
}

// Config tunes the retrieval stage. Zero values fall back to the store
// defaults.
type Config struct {
	SimilarityThreshold float64
	RetrievalLimit      int
}

// Engine composes the pipeline collaborators. All external capabilities are
// injected at construction time; the engine holds no mutable state between
// requests.
type Engine struct {
	embedder  embedding.Embedder
	templates store.TemplateStore
	explainer Explainer
	cfg       Config
}

// NewEngine creates an Engine. A nil explainer routes every explanation
// through the deterministic fallback.
func NewEngine(embedder embedding.Embedder, templates store.TemplateStore, explainer Explainer, cfg Config) *Engine {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = store.DefaultThreshold
	}
	if cfg.RetrievalLimit <= 0 {
		cfg.RetrievalLimit = store.DefaultLimit
	}
	return &Engine{
		embedder:  embedder,
		templates: templates,
		explainer: explainer,
		cfg:       cfg,
	}
}

// Recommend runs the full pipeline for one profile and returns at most topN
// recommendations. A negative topN selects the default. Only ErrInvalidProfile
// and ErrEmbeddingUnavailable cross this boundary as failures; every other
// condition degrades to a defined deterministic behavior.
func (e *Engine) Recommend(ctx context.Context, profile *types.UserProfile, topN int) (*types.Result, error) {
	start := time.Now()

	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if topN < 0 {
		topN = scoring.DefaultTopN
	}

	query, err := e.embedder.EmbedProfile(ctx, profile)
	if err != nil {
		return nil, &ErrEmbeddingUnavailable{Cause: err}
	}

	retrieved := e.retrieve(ctx, query)
	if len(retrieved) == 0 {
		return e.mockResult(profile, topN, start), nil
	}

	candidates := make([]types.ScoredCandidate, 0, len(retrieved))
	for _, r := range retrieved {
		candidates = append(candidates, types.ScoredCandidate{
			Template: r.Template,
			Scores:   scoring.Score(profile, r.Template, r.Similarity),
		})
	}

	ranked := scoring.Rank(candidates, topN)
	recommendations := e.explainAll(ctx, profile, ranked)

	return &types.Result{
		Recommendations: recommendations,
		Source:          types.SourceDatabase,
		Diagnostics: types.Diagnostics{
			CandidatesRetrieved: len(retrieved),
			ElapsedMs:           time.Since(start).Milliseconds(),
		},
	}, nil
}

// retrieve fetches the candidate pool. Store failures and empty results both
// return an empty pool: the caller treats that as the mock-fallback condition
// rather than an error, so the product never shows an empty state.
func (e *Engine) retrieve(ctx context.Context, query []float32) []store.RetrievedTemplate {
	count, err := e.templates.ActiveCount(ctx)
	if err != nil {
		log.Printf("template count failed, using mock catalog: %v", err)
		return nil
	}
	if count == 0 {
		return nil
	}

	retrieved, err := e.templates.Retrieve(ctx, query, e.cfg.SimilarityThreshold, e.cfg.RetrievalLimit)
	if err != nil {
		log.Printf("template retrieval failed, using mock catalog: %v", err)
		return nil
	}
	return retrieved
}

// explainAll builds the final recommendations, issuing explanation calls
// concurrently. Results are written into a slice indexed by rank so the
// output preserves the ranked order regardless of call completion order.
func (e *Engine) explainAll(ctx context.Context, profile *types.UserProfile, ranked []types.ScoredCandidate) []types.Recommendation {
	recommendations := make([]types.Recommendation, len(ranked))

	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range ranked {
		g.Go(func() error {
			recommendations[i] = e.buildRecommendation(gctx, profile, candidate)
			return nil
		})
	}
	// buildRecommendation never fails; explanation errors degrade to the
	// deterministic fallback inside the explainer.
	_ = g.Wait()

	return recommendations
}

func (e *Engine) buildRecommendation(ctx context.Context, profile *types.UserProfile, candidate types.ScoredCandidate) types.Recommendation {
	tmpl := candidate.Template

	var whyYou []string
	if e.explainer != nil {
		whyYou = e.explainer.Explain(ctx, tmpl, profile, candidate.Scores)
	} else {
		whyYou = explain.Fallback(profile)
	}

	return types.Recommendation{
		TemplateID:       tmpl.ID.String(),
		Title:            tmpl.Title,
		WhyYou:           whyYou,
		FirstWin:         firstWin(tmpl),
		DifficultyOrRisk: difficultyOrRisk(tmpl),
		TimeToIncome:     timeToIncome(tmpl),
		StartupCost:      startupCost(tmpl),
		KeySteps:         keySteps(tmpl),
		FitScore:         fitScore(candidate.Scores.Total),
	}
}

func (e *Engine) mockResult(profile *types.UserProfile, topN int, start time.Time) *types.Result {
	recommendations := catalog.MockRecommendations(profile)
	if len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	return &types.Result{
		Recommendations: recommendations,
		Source:          types.SourceMock,
		Diagnostics: types.Diagnostics{
			CandidatesRetrieved: 0,
			ElapsedMs:           time.Since(start).Milliseconds(),
		},
	}
}

// validateProfile re-checks the onboarding invariants before any external
// call is made.
func validateProfile(profile *types.UserProfile) error {
	if profile == nil {
		return &ErrInvalidProfile{Reason: "profile is required"}
	}
	if len(profile.Sparks) == 0 {
		return &ErrInvalidProfile{Reason: "sparks must not be empty"}
	}
	if len(profile.Values) == 0 {
		return &ErrInvalidProfile{Reason: "values must not be empty"}
	}
	if utf8.RuneCountInString(strings.TrimSpace(profile.Dream)) < MinDreamLength {
		return &ErrInvalidProfile{Reason: "dream must be at least 20 characters"}
	}
	return nil
}

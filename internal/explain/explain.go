// Package explain produces the personalized "why this fits you" bullets for
// a recommended path, delegating to the text-generation capability with a
// deterministic fallback.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cornjebus/junie/internal/llm"
	"github.com/Cornjebus/junie/internal/prompts"
	"github.com/Cornjebus/junie/internal/types"
)

// BulletCount is the exact number of why-you bullets per recommendation.
// Downstream UI assumes exactly this many.
const BulletCount = 3

// Generator explains recommendations through an LLM, falling back to the
// deterministic template on any failure.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator. A nil client makes every call take the
// fallback path.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Explain returns exactly BulletCount personalized bullets for the template.
// It never fails: timeouts, malformed responses, and wrong-sized results all
// degrade to Fallback.
func (g *Generator) Explain(ctx context.Context, tmpl *types.PathTemplate, profile *types.UserProfile, scores types.Scores) []string {
	if g == nil || g.client == nil {
		return Fallback(profile)
	}

	bullets, err := g.generate(ctx, tmpl, profile, scores)
	if err != nil {
		return Fallback(profile)
	}
	return bullets
}

func (g *Generator) generate(ctx context.Context, tmpl *types.PathTemplate, profile *types.UserProfile, scores types.Scores) ([]string, error) {
	prompt := buildPrompt(tmpl, profile, scores)

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	bullets, err := llm.ParseStringList(raw)
	if err != nil {
		return nil, err
	}
	if len(bullets) != BulletCount {
		return nil, fmt.Errorf("expected %d bullets, got %d", BulletCount, len(bullets))
	}
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			return nil, fmt.Errorf("empty bullet in response")
		}
	}
	return bullets, nil
}

// buildPrompt constructs the why-you generation prompt.
func buildPrompt(tmpl *types.PathTemplate, profile *types.UserProfile, scores types.Scores) string {
	startupCost := "not specified"
	if avg, ok := tmpl.Requirements.AverageStartupCost(); ok {
		startupCost = fmt.Sprintf("around $%.0f", avg)
	}

	template := prompts.MustGet("recommend.json", "why-you-bullets")
	return prompts.Format(template, map[string]string{
		"Sparks":          strings.Join(profile.Sparks, ", "),
		"Values":          strings.Join(profile.Values, ", "),
		"Dream":           profile.Dream,
		"Title":           tmpl.Title,
		"Category":        string(tmpl.Category),
		"Description":     tmpl.Description,
		"SkillsNeeded":    strings.Join(tmpl.TypicalFit.SkillsNeeded, ", "),
		"StartupCost":     startupCost,
		"SkillsMatch":     fmt.Sprintf("%.2f", scores.SkillsMatch),
		"ValuesAlignment": fmt.Sprintf("%.2f", scores.ValuesAlignment),
		"Feasibility":     fmt.Sprintf("%.2f", scores.Feasibility),
	})
}

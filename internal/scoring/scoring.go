// Package scoring computes multi-factor fit scores for path templates
// against a user profile and ranks the results.
package scoring

import (
	"strings"

	"github.com/Cornjebus/junie/internal/types"
)

// Weights for the total score. These are a fixed design constant, not
// user-configurable, and must sum to 1.0.
const (
	vectorSimilarityWeight = 0.4
	skillsMatchWeight      = 0.2
	valuesAlignmentWeight  = 0.2
	feasibilityWeight      = 0.2
)

// neutralScore is used when a sub-score has nothing to compare against.
const neutralScore = 0.5

// Score computes the four sub-scores for one candidate and their weighted
// total. vectorSimilarity comes from retrieval and is already in [0, 1].
func Score(profile *types.UserProfile, tmpl *types.PathTemplate, vectorSimilarity float64) types.Scores {
	scores := types.Scores{
		VectorSimilarity: clamp01(vectorSimilarity),
		SkillsMatch:      overlapScore(profile.Sparks, tmpl.TypicalFit.Sparks),
		ValuesAlignment:  overlapScore(profile.Values, tmpl.TypicalFit.Values),
		Feasibility:      feasibilityScore(tmpl.Requirements),
	}

	scores.Total = clamp01(
		vectorSimilarityWeight*scores.VectorSimilarity +
			skillsMatchWeight*scores.SkillsMatch +
			valuesAlignmentWeight*scores.ValuesAlignment +
			feasibilityWeight*scores.Feasibility)

	return scores
}

// overlapScore measures how many of the user's terms find a counterpart in
// the template's terms. A user term matches when it contains, or is
// contained in, any template term, case-insensitively. The bidirectional
// substring test is a deliberate heuristic to tolerate phrasing variance
// ("Coaching" matches "Life Coaching"); it is isolated here so it can be
// swapped for a stricter token-set comparison without touching the scorer.
func overlapScore(userTerms, templateTerms []string) float64 {
	if len(templateTerms) == 0 || len(userTerms) == 0 {
		return neutralScore
	}

	matches := 0
	for _, userTerm := range userTerms {
		u := strings.ToLower(strings.TrimSpace(userTerm))
		if u == "" {
			continue
		}
		for _, templateTerm := range templateTerms {
			tt := strings.ToLower(strings.TrimSpace(templateTerm))
			if tt == "" {
				continue
			}
			if strings.Contains(tt, u) || strings.Contains(u, tt) {
				matches++
				break
			}
		}
	}

	score := float64(matches) / float64(len(userTerms))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// feasibilityScore starts from a neutral baseline and adds bonuses for low
// startup cost and low weekly hour requirements. Cost tiers are half-open:
// [0,100) earns 0.3, [100,500) earns 0.2, [500,1000) earns 0.1, and 1000 or
// more (or missing data) earns nothing.
func feasibilityScore(req *types.Requirements) float64 {
	score := neutralScore

	if avg, ok := req.AverageStartupCost(); ok {
		switch {
		case avg < 100:
			score += 0.3
		case avg < 500:
			score += 0.2
		case avg < 1000:
			score += 0.1
		}
	}

	if req != nil && req.MinHours != nil {
		switch {
		case *req.MinHours <= 10:
			score += 0.2
		case *req.MinHours <= 20:
			score += 0.1
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

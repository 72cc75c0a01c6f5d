// Package catalog holds the fixed fallback recommendations shown when no
// real path templates are available. The entries live in an embedded JSON
// fixture so they can be versioned and tested independently of the pipeline.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Cornjebus/junie/internal/explain"
	"github.com/Cornjebus/junie/internal/prompts"
	"github.com/Cornjebus/junie/internal/types"
)

//go:embed mock_catalog.json
var mockCatalogJSON []byte

// MockSize is the number of entries in the fallback catalog.
const MockSize = 5

// Defaults substituted when the profile lacks the referenced field.
const (
	defaultSpark = "your interests"
	defaultValue = "what matters to you"
	defaultDream = "your goals"
)

// MockRecommendations returns the fixed fallback catalog, lightly
// personalized with the user's first spark, first value, and a preview of
// their dream. It bypasses scoring entirely and never fails.
func MockRecommendations(profile *types.UserProfile) []types.Recommendation {
	entries, err := load()
	if err != nil {
		// The fixture is embedded and covered by tests; a parse failure here
		// means a broken build, not a runtime condition.
		panic(fmt.Sprintf("mock catalog fixture invalid: %v", err))
	}

	data := map[string]string{
		"Spark": defaultSpark,
		"Value": defaultValue,
		"Dream": defaultDream,
	}
	if profile != nil {
		data["Spark"] = profile.FirstSpark(defaultSpark)
		data["Value"] = profile.FirstValue(defaultValue)
		if profile.Dream != "" {
			data["Dream"] = explain.TruncateDream(profile.Dream)
		}
	}

	for i := range entries {
		entries[i].Title = prompts.Format(entries[i].Title, data)
		entries[i].FirstWin = prompts.Format(entries[i].FirstWin, data)
		for j, b := range entries[i].WhyYou {
			entries[i].WhyYou[j] = prompts.Format(b, data)
		}
		for j, s := range entries[i].KeySteps {
			entries[i].KeySteps[j] = prompts.Format(s, data)
		}
	}
	return entries
}

func load() ([]types.Recommendation, error) {
	var entries []types.Recommendation
	if err := json.Unmarshal(mockCatalogJSON, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse mock catalog: %w", err)
	}
	if len(entries) != MockSize {
		return nil, fmt.Errorf("mock catalog has %d entries, want %d", len(entries), MockSize)
	}
	return entries, nil
}

// Package embedding turns structured profiles and templates into dense
// vectors via the external embedding capability.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cornjebus/junie/internal/llm"
	"github.com/Cornjebus/junie/internal/types"
)

// Embedder produces a single dense vector for a user profile.
type Embedder interface {
	EmbedProfile(ctx context.Context, profile *types.UserProfile) ([]float32, error)
}

// ProfileText concatenates sparks, values, and dream into one descriptive
// text blob in a fixed field order. Changing the order would silently change
// every similarity score, so keep it stable.
func ProfileText(profile *types.UserProfile) string {
	var sb strings.Builder
	sb.WriteString("Interests: ")
	sb.WriteString(strings.Join(profile.Sparks, ", "))
	sb.WriteString(". Values: ")
	sb.WriteString(strings.Join(profile.Values, ", "))
	sb.WriteString(". Dream: ")
	sb.WriteString(profile.Dream)
	return sb.String()
}

// TemplateText builds the text blob a path template is embedded from during
// seeding. Mirrors the profile blob's vocabulary so the two land in
// comparable regions of the embedding space.
func TemplateText(t *types.PathTemplate) string {
	var sb strings.Builder
	sb.WriteString(t.Title)
	sb.WriteString(". ")
	if t.Description != "" {
		sb.WriteString(t.Description)
		sb.WriteString(" ")
	}
	sb.WriteString("Interests: ")
	sb.WriteString(strings.Join(t.TypicalFit.Sparks, ", "))
	sb.WriteString(". Values: ")
	sb.WriteString(strings.Join(t.TypicalFit.Values, ", "))
	sb.WriteString(". Skills: ")
	sb.WriteString(strings.Join(t.TypicalFit.SkillsNeeded, ", "))
	return sb.String()
}

// ClientEmbedder implements Embedder on top of an llm.Client, with an
// optional response cache at the capability boundary.
type ClientEmbedder struct {
	client llm.Client
	cache  Cache
}

// NewEmbedder creates an embedder. The cache may be nil to disable caching.
func NewEmbedder(client llm.Client, cache Cache) *ClientEmbedder {
	return &ClientEmbedder{client: client, cache: cache}
}

// EmbedProfile embeds a user profile. Failure of the external capability is
// returned as an error, never defaulted: a garbage vector would corrupt every
// downstream similarity score.
func (e *ClientEmbedder) EmbedProfile(ctx context.Context, profile *types.UserProfile) ([]float32, error) {
	text := ProfileText(profile)

	if e.cache != nil {
		if vec, ok := e.cache.Get(ctx, text); ok {
			return vec, nil
		}
	}

	vec, err := e.client.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("profile embedding failed: %w", err)
	}

	if e.cache != nil {
		e.cache.Put(ctx, text, vec)
	}
	return vec, nil
}

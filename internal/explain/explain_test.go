package explain

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cornjebus/junie/internal/llm"
	"github.com/Cornjebus/junie/internal/types"
)

// fakeGenClient returns a canned GenerateJSON response.
type fakeGenClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenClient) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeGenClient) GetModel(_ llm.ModelTier) string { return "fake" }
func (f *fakeGenClient) Close() error                    { return nil }

func explainProfile() *types.UserProfile {
	return &types.UserProfile{
		Sparks: []string{"Coaching"},
		Values: []string{"Freedom"},
		Dream:  "Build a coaching practice that lets me live anywhere in the world",
	}
}

func explainTemplate() *types.PathTemplate {
	return &types.PathTemplate{
		Title:    "Life Coaching Practice",
		Category: types.CategoryBusiness,
		TypicalFit: types.TypicalFit{
			SkillsNeeded: []string{"Listening", "Marketing"},
		},
	}
}

func TestExplain_LLMSuccess(t *testing.T) {
	client := &fakeGenClient{response: `["Builds on your coaching interest", "Low startup cost fits your budget", "Moves you toward full independence"]`}
	g := NewGenerator(client)

	bullets := g.Explain(context.Background(), explainTemplate(), explainProfile(), types.Scores{})
	require.Len(t, bullets, BulletCount)
	assert.Equal(t, "Builds on your coaching interest", bullets[0])
	assert.Equal(t, 1, client.calls)
}

func TestExplain_FallbackPaths(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeGenClient
	}{
		{name: "generation error", client: &fakeGenClient{err: fmt.Errorf("timeout")}},
		{name: "malformed JSON", client: &fakeGenClient{response: `{"oops": true}`}},
		{name: "wrong bullet count", client: &fakeGenClient{response: `["only", "two"]`}},
		{name: "empty bullet", client: &fakeGenClient{response: `["one", "", "three"]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.client)
			bullets := g.Explain(context.Background(), explainTemplate(), explainProfile(), types.Scores{})
			require.Len(t, bullets, BulletCount)
			assert.Contains(t, bullets[0], "Coaching")
		})
	}
}

func TestExplain_NilClient(t *testing.T) {
	g := NewGenerator(nil)
	bullets := g.Explain(context.Background(), explainTemplate(), explainProfile(), types.Scores{})
	assert.Len(t, bullets, BulletCount)
}

func TestFallback_ExactlyThreeBullets(t *testing.T) {
	bullets := Fallback(explainProfile())
	require.Len(t, bullets, BulletCount)
	assert.Equal(t, "Matches your interest in Coaching", bullets[0])
	assert.Equal(t, "Aligns with your value of Freedom", bullets[1])
	assert.Contains(t, bullets[2], "Supports your dream")
}

func TestFallback_EmptyProfileFields(t *testing.T) {
	bullets := Fallback(&types.UserProfile{Dream: "short dream"})
	require.Len(t, bullets, BulletCount)
	assert.Equal(t, "Matches your interest in new opportunities", bullets[0])
	assert.Equal(t, "Aligns with your value of personal growth", bullets[1])
}

func TestFallback_Deterministic(t *testing.T) {
	first := Fallback(explainProfile())
	second := Fallback(explainProfile())
	assert.Equal(t, first, second)
}

func TestTruncateDream(t *testing.T) {
	long := strings.Repeat("a", 60)
	assert.Len(t, TruncateDream(long), 40)

	short := "stay small"
	assert.Equal(t, short, TruncateDream(short))
}

func TestFallback_TruncatesLongDream(t *testing.T) {
	profile := &types.UserProfile{
		Sparks: []string{"Art"},
		Values: []string{"Beauty"},
		Dream:  strings.Repeat("x", 100),
	}
	bullets := Fallback(profile)
	assert.Contains(t, bullets[2], strings.Repeat("x", 40)+"...")
	assert.NotContains(t, bullets[2], strings.Repeat("x", 41))
}

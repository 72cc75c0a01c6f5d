package embedding

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cornjebus/junie/internal/llm"
	"github.com/Cornjebus/junie/internal/types"
)

// fakeClient implements llm.Client with canned responses.
type fakeClient struct {
	vec        []float32
	embedErr   error
	embedCalls int
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "", fmt.Errorf("not implemented")
}

func (f *fakeClient) EmbedText(_ context.Context, _ string) ([]float32, error) {
	f.embedCalls++
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.vec, nil
}

func (f *fakeClient) GetModel(_ llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                    { return nil }

// mapCache is an in-memory Cache for tests.
type mapCache struct {
	entries map[string][]float32
}

func newMapCache() *mapCache { return &mapCache{entries: make(map[string][]float32)} }

func (c *mapCache) Get(_ context.Context, text string) ([]float32, bool) {
	vec, ok := c.entries[text]
	return vec, ok
}

func (c *mapCache) Put(_ context.Context, text string, vec []float32) {
	c.entries[text] = vec
}

func testProfile() *types.UserProfile {
	return &types.UserProfile{
		Sparks: []string{"Coaching", "Writing"},
		Values: []string{"Freedom"},
		Dream:  "Build a coaching practice that funds my travels",
	}
}

func TestProfileText_FieldOrder(t *testing.T) {
	text := ProfileText(testProfile())
	assert.Equal(t, "Interests: Coaching, Writing. Values: Freedom. Dream: Build a coaching practice that funds my travels", text)
}

func TestTemplateText(t *testing.T) {
	tmpl := &types.PathTemplate{
		Title:       "Freelance Writing",
		Description: "Write for clients online.",
		TypicalFit: types.TypicalFit{
			Sparks:       []string{"Writing"},
			Values:       []string{"Creativity"},
			SkillsNeeded: []string{"Editing"},
		},
	}
	text := TemplateText(tmpl)
	assert.Contains(t, text, "Freelance Writing")
	assert.Contains(t, text, "Interests: Writing")
	assert.Contains(t, text, "Skills: Editing")
}

func TestEmbedProfile(t *testing.T) {
	client := &fakeClient{vec: []float32{0.1, 0.2, 0.3}}
	embedder := NewEmbedder(client, nil)

	vec, err := embedder.EmbedProfile(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, 1, client.embedCalls)
}

func TestEmbedProfile_Failure(t *testing.T) {
	client := &fakeClient{embedErr: fmt.Errorf("upstream timeout")}
	embedder := NewEmbedder(client, nil)

	_, err := embedder.EmbedProfile(context.Background(), testProfile())
	assert.Error(t, err)
}

func TestEmbedProfile_CacheHitSkipsClient(t *testing.T) {
	client := &fakeClient{vec: []float32{0.5, 0.5}}
	cache := newMapCache()
	embedder := NewEmbedder(client, cache)

	profile := testProfile()
	first, err := embedder.EmbedProfile(context.Background(), profile)
	require.NoError(t, err)

	second, err := embedder.EmbedProfile(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.embedCalls, "second call should be served from cache")
}

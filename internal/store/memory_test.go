package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cornjebus/junie/internal/types"
)

func newTemplate(title string, embedding []float32, active bool) *types.PathTemplate {
	return &types.PathTemplate{
		ID:        uuid.New(),
		Title:     title,
		Category:  types.CategoryBusiness,
		Embedding: embedding,
		IsActive:  active,
	}
}

func TestMemoryStore_Retrieve_OrderingAndThreshold(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Add(newTemplate("exact", []float32{1, 0, 0}, true)))
	require.NoError(t, s.Add(newTemplate("close", []float32{0.9, 0.1, 0}, true)))
	require.NoError(t, s.Add(newTemplate("orthogonal", []float32{0, 1, 0}, true)))

	got, err := s.Retrieve(context.Background(), []float32{1, 0, 0}, 0.5, 20)
	require.NoError(t, err)
	require.Len(t, got, 2, "orthogonal template is below threshold")

	assert.Equal(t, "exact", got[0].Template.Title)
	assert.Equal(t, "close", got[1].Template.Title)
	assert.Greater(t, got[0].Similarity, got[1].Similarity)
}

func TestMemoryStore_Retrieve_SkipsInactive(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Add(newTemplate("active", []float32{1, 0}, true)))
	require.NoError(t, s.Add(newTemplate("inactive", []float32{1, 0}, false)))

	got, err := s.Retrieve(context.Background(), []float32{1, 0}, 0.5, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "active", got[0].Template.Title)

	count, err := s.ActiveCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStore_Retrieve_Limit(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Add(newTemplate("t", []float32{1, 0}, true)))
	}

	got, err := s.Retrieve(context.Background(), []float32{1, 0}, 0.5, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestMemoryStore_Retrieve_ThresholdIsStrict(t *testing.T) {
	s := NewMemoryStore()
	// 45 degrees from the query: similarity exactly ~0.7071.
	require.NoError(t, s.Add(newTemplate("diagonal", []float32{1, 1}, true)))

	got, err := s.Retrieve(context.Background(), []float32{1, 0}, 0.7072, 20)
	require.NoError(t, err)
	assert.Empty(t, got, "similarity equal or below threshold is excluded")
}

func TestMemoryStore_Add_DimensionMismatch(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Add(newTemplate("a", []float32{1, 0, 0}, true)))

	err := s.Add(newTemplate("b", []float32{1, 0}, true))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVectorLengthMismatch)
}

func TestMemoryStore_Add_RequiresEmbedding(t *testing.T) {
	s := NewMemoryStore()
	assert.Error(t, s.Add(newTemplate("no-vector", nil, true)))
}

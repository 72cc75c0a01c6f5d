package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Cornjebus/junie/internal/types"
)

// MemoryStore is an exact-search TemplateStore held in process memory. It
// backs tests, seed previews, and DB-less deployments that load templates
// from a JSON file.
type MemoryStore struct {
	mu        sync.RWMutex
	templates []*types.PathTemplate
	dims      int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add inserts a template. The first template fixes the store's embedding
// dimensionality; later templates must match it.
func (s *MemoryStore) Add(t *types.PathTemplate) error {
	if len(t.Embedding) == 0 {
		return fmt.Errorf("template %s has no embedding", t.Title)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dims == 0 {
		s.dims = len(t.Embedding)
	} else if len(t.Embedding) != s.dims {
		return fmt.Errorf("template %s: %w (store %d, template %d)",
			t.Title, ErrVectorLengthMismatch, s.dims, len(t.Embedding))
	}

	s.templates = append(s.templates, t)
	return nil
}

// Len reports how many templates the store holds, active or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

// ActiveCount reports how many active templates the store holds.
func (s *MemoryStore) ActiveCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, t := range s.templates {
		if t.IsActive {
			count++
		}
	}
	return count, nil
}

// Retrieve scans active templates, keeping those with cosine similarity
// strictly above threshold, ordered by descending similarity and capped at
// limit.
func (s *MemoryStore) Retrieve(_ context.Context, query []float32, threshold float64, limit int) ([]RetrievedTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []RetrievedTemplate
	for _, t := range s.templates {
		if !t.IsActive {
			continue
		}
		sim, err := Cosine(query, t.Embedding)
		if err != nil {
			return nil, fmt.Errorf("similarity against template %s: %w", t.ID, err)
		}
		if sim > threshold {
			matches = append(matches, RetrievedTemplate{Template: t, Similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

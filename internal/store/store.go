// Package store defines the template store contract and provides an
// in-memory implementation with exact cosine similarity search.
package store

import (
	"context"

	"github.com/Cornjebus/junie/internal/types"
)

// Retrieval defaults. The retrieval limit is deliberately larger than the
// final top-N so the scorer has a wider pool before feasibility and values
// adjustments reorder candidates.
const (
	DefaultThreshold = 0.5
	DefaultLimit     = 20
)

// RetrievedTemplate pairs a template with its query similarity.
type RetrievedTemplate struct {
	Template   *types.PathTemplate
	Similarity float64
}

// TemplateStore is the read-only collection of path templates the engine
// retrieves candidates from. Implementations must only consider active
// templates, filter to similarity strictly above the threshold, order by
// descending similarity, and cap the result at limit.
type TemplateStore interface {
	// ActiveCount reports how many active templates the store holds.
	ActiveCount(ctx context.Context) (int, error)
	// Retrieve runs a nearest-neighbor search against the query vector.
	Retrieve(ctx context.Context, query []float32, threshold float64, limit int) ([]RetrievedTemplate, error)
}

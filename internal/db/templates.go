package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Cornjebus/junie/internal/store"
	"github.com/Cornjebus/junie/internal/types"
)

// InsertTemplate stores a path template with its embedding. Existing rows
// with the same ID are replaced, so reseeding is idempotent.
func (db *DB) InsertTemplate(ctx context.Context, t *types.PathTemplate) error {
	typicalFit, err := json.Marshal(t.TypicalFit)
	if err != nil {
		return fmt.Errorf("failed to marshal typical_fit: %w", err)
	}
	requirements, err := marshalNullable(t.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}
	outcomes, err := marshalNullable(t.Outcomes)
	if err != nil {
		return fmt.Errorf("failed to marshal outcomes: %w", err)
	}
	plan, err := marshalNullable(t.PlanTemplate)
	if err != nil {
		return fmt.Errorf("failed to marshal plan_template: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO path_templates
		   (id, title, category, subcategory, description, typical_fit, requirements, outcomes, plan_template, embedding, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::vector, $11)
		 ON CONFLICT (id) DO UPDATE SET
		   title = $2, category = $3, subcategory = $4, description = $5,
		   typical_fit = $6, requirements = $7, outcomes = $8, plan_template = $9,
		   embedding = $10::vector, is_active = $11, updated_at = NOW()`,
		t.ID, t.Title, t.Category, t.Subcategory, t.Description,
		typicalFit, requirements, outcomes, plan,
		vectorLiteral(t.Embedding), t.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to insert template %s: %w", t.Title, err)
	}
	return nil
}

// ActiveCount reports how many active templates are stored.
func (db *DB) ActiveCount(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM path_templates WHERE is_active = TRUE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count templates: %w", err)
	}
	return count, nil
}

// Retrieve runs a cosine-similarity search over active templates in the
// database. Implements store.TemplateStore.
func (db *DB) Retrieve(ctx context.Context, query []float32, threshold float64, limit int) ([]store.RetrievedTemplate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, category, subcategory, description,
		        typical_fit, requirements, outcomes, plan_template,
		        1 - (embedding <=> $1::vector) AS similarity
		 FROM path_templates
		 WHERE is_active = TRUE
		   AND 1 - (embedding <=> $1::vector) > $2
		 ORDER BY similarity DESC
		 LIMIT $3`,
		vectorLiteral(query), threshold, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search templates: %w", err)
	}
	defer rows.Close()

	var results []store.RetrievedTemplate
	for rows.Next() {
		t, sim, err := scanRetrievedTemplate(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, store.RetrievedTemplate{Template: t, Similarity: sim})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search results: %w", err)
	}
	return results, nil
}

// GetTemplate retrieves a template by ID, or nil when not found.
func (db *DB) GetTemplate(ctx context.Context, id uuid.UUID) (*types.PathTemplate, error) {
	var t types.PathTemplate
	var typicalFit, requirements, outcomes, plan []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, category, subcategory, description,
		        typical_fit, requirements, outcomes, plan_template, is_active
		 FROM path_templates WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Title, &t.Category, &t.Subcategory, &t.Description,
		&typicalFit, &requirements, &outcomes, &plan, &t.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if err := unmarshalTemplateJSON(&t, typicalFit, requirements, outcomes, plan); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTemplates retrieves active templates ordered by title.
func (db *DB) ListTemplates(ctx context.Context) ([]*types.PathTemplate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, category, subcategory, description,
		        typical_fit, requirements, outcomes, plan_template, is_active
		 FROM path_templates WHERE is_active = TRUE ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*types.PathTemplate
	for rows.Next() {
		var t types.PathTemplate
		var typicalFit, requirements, outcomes, plan []byte
		if err := rows.Scan(&t.ID, &t.Title, &t.Category, &t.Subcategory, &t.Description,
			&typicalFit, &requirements, &outcomes, &plan, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		if err := unmarshalTemplateJSON(&t, typicalFit, requirements, outcomes, plan); err != nil {
			return nil, err
		}
		templates = append(templates, &t)
	}
	return templates, nil
}

func scanRetrievedTemplate(rows pgx.Rows) (*types.PathTemplate, float64, error) {
	var t types.PathTemplate
	var typicalFit, requirements, outcomes, plan []byte
	var similarity float64

	if err := rows.Scan(&t.ID, &t.Title, &t.Category, &t.Subcategory, &t.Description,
		&typicalFit, &requirements, &outcomes, &plan, &similarity); err != nil {
		return nil, 0, fmt.Errorf("failed to scan template: %w", err)
	}
	t.IsActive = true

	if err := unmarshalTemplateJSON(&t, typicalFit, requirements, outcomes, plan); err != nil {
		return nil, 0, err
	}
	return &t, similarity, nil
}

func unmarshalTemplateJSON(t *types.PathTemplate, typicalFit, requirements, outcomes, plan []byte) error {
	if len(typicalFit) > 0 {
		if err := json.Unmarshal(typicalFit, &t.TypicalFit); err != nil {
			return fmt.Errorf("failed to parse typical_fit for %s: %w", t.ID, err)
		}
	}
	if len(requirements) > 0 {
		if err := json.Unmarshal(requirements, &t.Requirements); err != nil {
			return fmt.Errorf("failed to parse requirements for %s: %w", t.ID, err)
		}
	}
	if len(outcomes) > 0 {
		if err := json.Unmarshal(outcomes, &t.Outcomes); err != nil {
			return fmt.Errorf("failed to parse outcomes for %s: %w", t.ID, err)
		}
	}
	if len(plan) > 0 {
		if err := json.Unmarshal(plan, &t.PlanTemplate); err != nil {
			return fmt.Errorf("failed to parse plan_template for %s: %w", t.ID, err)
		}
	}
	return nil
}

func marshalNullable(v any) ([]byte, error) {
	switch val := v.(type) {
	case *types.Requirements:
		if val == nil {
			return nil, nil
		}
	case *types.Outcomes:
		if val == nil {
			return nil, nil
		}
	case *types.PlanTemplate:
		if val == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

// vectorLiteral renders a float32 slice in pgvector's input format.
func vectorLiteral(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

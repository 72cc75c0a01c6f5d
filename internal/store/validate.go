package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Cornjebus/junie/internal/types"
)

//go:embed path_template.schema.json
var templateSchema string

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports schema violations in a template record.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("template validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// QuarantinedRecord is a seed record rejected at the store boundary, kept
// aside with its reason so curation can fix it.
type QuarantinedRecord struct {
	Index  int
	Title  string
	Reason error
}

// ValidateTemplateJSON validates one raw template record against the
// embedded JSON Schema.
func ValidateTemplateJSON(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(templateSchema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// DecodeTemplates parses a JSON array of template records, validating each
// against the schema. Malformed records are quarantined rather than
// propagated into scoring; only the returned error is fatal (unparseable
// input as a whole).
func DecodeTemplates(data []byte) ([]*types.PathTemplate, []QuarantinedRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse template file: %w", err)
	}

	var valid []*types.PathTemplate
	var quarantined []QuarantinedRecord

	for i, doc := range raw {
		title := peekTitle(doc)

		if err := ValidateTemplateJSON(doc); err != nil {
			quarantined = append(quarantined, QuarantinedRecord{Index: i, Title: title, Reason: err})
			continue
		}

		var t types.PathTemplate
		if err := json.Unmarshal(doc, &t); err != nil {
			quarantined = append(quarantined, QuarantinedRecord{Index: i, Title: title, Reason: err})
			continue
		}
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		if !hasIsActive(doc) {
			// Records that don't say are treated as active; seeding everything
			// inactive by omission would silently force the mock fallback.
			t.IsActive = true
		}
		valid = append(valid, &t)
	}

	return valid, quarantined, nil
}

func hasIsActive(doc []byte) bool {
	var probe struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return false
	}
	return probe.IsActive != nil
}

// peekTitle extracts a best-effort title from a raw record for reporting.
func peekTitle(doc []byte) string {
	var probe struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return ""
	}
	return probe.Title
}

package frontmatter

import (
	"fmt"
	"sort"

	"github.com/youssefhossamm/cursor-kickstart/internal/models"
	"github.com/youssefhossamm/cursor-kickstart/internal/tokens"
)

// Validator checks document headers against per-category schemas and
// attaches token estimates to every result. Commands carry no
// frontmatter contract and validate trivially.
type Validator struct {
	schemas   map[models.Category]models.FrontmatterSchema
	estimator *tokens.Estimator
}

// NewValidator creates a validator with the default rule schema.
func NewValidator(estimator *tokens.Estimator) *Validator {
	if estimator == nil {
		estimator = tokens.NewEstimator(0, 0)
	}
	return &Validator{
		schemas: map[models.Category]models.FrontmatterSchema{
			models.CategoryRule: models.RuleSchema(),
		},
		estimator: estimator,
	}
}

// RegisterSchema replaces the schema for a category.
func (v *Validator) RegisterSchema(cat models.Category, schema models.FrontmatterSchema) {
	v.schemas[cat] = schema
}

// Validate checks a single document and returns its result. All
// findings are collected; validation never stops at the first issue.
func (v *Validator) Validate(doc models.TemplateDocument) models.ValidationResult {
	result := models.ValidationResult{
		Path:  doc.Path,
		Valid: true,
	}

	schema := v.schemas[doc.Category]
	if schema == nil {
		// No contract for this category. Estimate the whole body.
		result.TokenEstimate = v.estimator.Estimate(doc.Body)
		result.Oversized = v.estimator.Oversized(doc.Body)
		return result
	}

	fields, body, ok := Parse(doc.Body)
	if !ok {
		result.Valid = false
		result.Issues = append(result.Issues, models.Issue{
			Message:  "no frontmatter found",
			Blocking: true,
		})
		result.TokenEstimate = v.estimator.Estimate(doc.Body)
		result.Oversized = v.estimator.Oversized(doc.Body)
		return result
	}

	result.TokenEstimate = v.estimator.Estimate(body)
	result.Oversized = v.estimator.Oversized(body)

	// Walk schema fields in a fixed order so issue lists are stable.
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := schema[name]
		value, present := fields[name]
		if !present {
			if spec.Required {
				result.Valid = false
				result.Issues = append(result.Issues, models.Issue{
					Field:    name,
					Message:  fmt.Sprintf("missing field: %s", name),
					Blocking: true,
				})
			}
			continue
		}
		if !matchesType(value, spec.Type) {
			result.Valid = false
			result.Issues = append(result.Issues, models.Issue{
				Field:    name,
				Message:  fmt.Sprintf("type mismatch: %s", name),
				Blocking: true,
			})
			continue
		}
		if len(spec.Allowed) > 0 && !allowedValue(value, spec.Allowed) {
			result.Valid = false
			result.Issues = append(result.Issues, models.Issue{
				Field:    name,
				Message:  fmt.Sprintf("invalid value: %s", name),
				Blocking: true,
			})
		}
	}

	// Unknown fields warn but never block.
	var unknown []string
	for name := range fields {
		if _, known := schema[name]; !known {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		result.Issues = append(result.Issues, models.Issue{
			Field:    name,
			Message:  fmt.Sprintf("unknown field: %s", name),
			Blocking: false,
		})
	}

	return result
}

// matchesType reports whether a decoded YAML value satisfies the
// declared field type.
func matchesType(value interface{}, ft models.FieldType) bool {
	switch ft {
	case models.FieldString:
		_, ok := value.(string)
		return ok
	case models.FieldBoolean:
		_, ok := value.(bool)
		return ok
	case models.FieldArray:
		switch value.(type) {
		case []interface{}, []string:
			return true
		}
		// A bare `globs:` with no value decodes to nil; treat the
		// explicitly-empty list as an empty array.
		return value == nil
	default:
		return true
	}
}

func allowedValue(value interface{}, allowed []string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

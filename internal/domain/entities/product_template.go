package entities

import "time"

// ParameterType describes how a template parameter is entered.
// Only numeric parameters participate in formulas today.
type ParameterType string

const (
	ParameterTypeNumber ParameterType = "number"
)

// Parameter is one named input of a product template.
//
// Slug is the formula-safe identifier used as a variable name; it must be
// unique within the template.
type Parameter struct {
	Name string        `json:"name"`
	Slug string        `json:"slug"`
	Type ParameterType `json:"type"`
}

// ProductTemplate is a parametric product definition.
//
// Domain notes:
//   - Formula is a plain arithmetic expression over the parameter slugs,
//     the reserved name MaterialPrice and the constant PI. It is validated
//     on save; an unparseable formula is rejected, never stored.
//   - Materials lists the allowed material ids for this product.
//   - Deleting a template does not cascade: project items keep referencing
//     the id and price as 0 until corrected (the reconciliation report
//     counts them as orphaned).
type ProductTemplate struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	ImageURL   string      `json:"imageUrl"`
	Parameters []Parameter `json:"parameters"`
	Materials  []string    `json:"materials"`
	Formula    string      `json:"formula"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ParameterSlugs returns the declared slugs in declaration order.
func (t ProductTemplate) ParameterSlugs() []string {
	slugs := make([]string, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

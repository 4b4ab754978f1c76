package response

import (
	"time"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

type ParameterResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Type string `json:"type"`
}

type TemplateResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	ImageURL   string              `json:"imageUrl,omitempty"`
	Parameters []ParameterResponse `json:"parameters"`
	Materials  []string            `json:"materials"`
	Formula    string              `json:"formula"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func FromTemplate(t entities.ProductTemplate) TemplateResponse {
	params := make([]ParameterResponse, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		params = append(params, ParameterResponse{Name: p.Name, Slug: p.Slug, Type: string(p.Type)})
	}
	return TemplateResponse{
		ID:         t.ID,
		Name:       t.Name,
		ImageURL:   t.ImageURL,
		Parameters: params,
		Materials:  t.Materials,
		Formula:    t.Formula,
		CreatedAt:  t.CreatedAt,
	}
}

func FromTemplates(ts []entities.ProductTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTemplate(t))
	}
	return out
}

// FormulaTestResponse mirrors the admin bench UI: always a number, plus
// the error text when the formula could not evaluate.
type FormulaTestResponse struct {
	Price float64 `json:"price"`
	Error string  `json:"error,omitempty"`
}

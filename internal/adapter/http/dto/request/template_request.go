package request

import (
	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

type ParameterRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
	Type string `json:"type"`
}

type TemplateRequest struct {
	Name       string             `json:"name" binding:"required"`
	ImageURL   string             `json:"imageUrl"`
	Parameters []ParameterRequest `json:"parameters"`
	Materials  []string           `json:"materials"`
	Formula    string             `json:"formula" binding:"required"`
}

func (r TemplateRequest) ToEntity() entities.ProductTemplate {
	params := make([]entities.Parameter, 0, len(r.Parameters))
	for _, p := range r.Parameters {
		params = append(params, entities.Parameter{
			Name: p.Name,
			Slug: p.Slug,
			Type: entities.ParameterType(p.Type),
		})
	}
	return entities.ProductTemplate{
		Name:       r.Name,
		ImageURL:   r.ImageURL,
		Parameters: params,
		Materials:  r.Materials,
		Formula:    r.Formula,
	}
}

// FormulaTestRequest is the admin test bench payload. Values are the
// sample numbers the admin typed next to each slug.
type FormulaTestRequest struct {
	Formula string             `json:"formula" binding:"required"`
	Values  map[string]float64 `json:"values"`
}

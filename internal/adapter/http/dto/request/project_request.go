package request

import (
	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
)

// ProjectItemRequest mirrors the configurator payload.
//
// MaterialPriceSnapshot is a pointer so that an omitted field and an
// explicit null decode identically; both mean "refresh my snapshot from
// the material's current price".
type ProjectItemRequest struct {
	Template              string             `json:"template" binding:"required"`
	Params                map[string]float64 `json:"params"`
	Quantity              int                `json:"quantity"`
	Material              string             `json:"material"`
	MaterialPriceSnapshot *float64           `json:"materialPriceSnapshot"`
	ManualPriceOverride   bool               `json:"manualPriceOverride"`
}

type ProjectRequest struct {
	Name     string               `json:"name" binding:"required"`
	Customer string               `json:"customer" binding:"required"`
	Status   string               `json:"status"`
	Items    []ProjectItemRequest `json:"items"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	items := make([]entities.ProjectItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.ProjectItem{
			TemplateID:            it.Template,
			Params:                it.Params,
			Quantity:              it.Quantity,
			MaterialID:            it.Material,
			MaterialPriceSnapshot: it.MaterialPriceSnapshot,
			ManualPriceOverride:   it.ManualPriceOverride,
		})
	}
	return usecase.ProjectInput{
		Name:       r.Name,
		CustomerID: r.Customer,
		Status:     entities.PipelineStatus(r.Status),
		Items:      items,
	}
}

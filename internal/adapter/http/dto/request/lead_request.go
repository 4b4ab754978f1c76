package request

import (
	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
)

type LeadRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Customer       string  `json:"customer"`
	Project        string  `json:"project"`
	EstimatedValue float64 `json:"estimatedValue"`
	Source         string  `json:"source"`
}

func (r LeadRequest) ToInput() usecase.LeadInput {
	return usecase.LeadInput{
		Title:          r.Title,
		Description:    r.Description,
		Status:         entities.PipelineStatus(r.Status),
		CustomerID:     r.Customer,
		ProjectID:      r.Project,
		EstimatedValue: r.EstimatedValue,
		Source:         r.Source,
	}
}

package response

import (
	"time"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

type LeadResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Customer       string    `json:"customer"`
	Project        string    `json:"project,omitempty"`
	EstimatedValue float64   `json:"estimatedValue"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID,
		Title:          l.Title,
		Description:    l.Description,
		Status:         string(l.Status),
		Customer:       l.CustomerID,
		Project:        l.ProjectID,
		EstimatedValue: l.EstimatedValue,
		Source:         l.Source,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromLeads(ls []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLead(l))
	}
	return out
}

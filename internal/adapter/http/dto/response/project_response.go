package response

import (
	"time"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
)

type ProjectItemResponse struct {
	Template              string             `json:"template"`
	Params                map[string]float64 `json:"params"`
	Quantity              int                `json:"quantity"`
	Material              string             `json:"material,omitempty"`
	MaterialPriceSnapshot *float64           `json:"materialPriceSnapshot,omitempty"`
	ManualPriceOverride   bool               `json:"manualPriceOverride"`
}

type ProjectResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Customer   string                `json:"customer"`
	Items      []ProjectItemResponse `json:"items"`
	TotalPrice float64               `json:"totalPrice"`
	Status     string                `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func FromProject(p entities.Project) ProjectResponse {
	items := make([]ProjectItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, ProjectItemResponse{
			Template:              it.TemplateID,
			Params:                it.Params,
			Quantity:              it.Quantity,
			Material:              it.MaterialID,
			MaterialPriceSnapshot: it.MaterialPriceSnapshot,
			ManualPriceOverride:   it.ManualPriceOverride,
		})
	}
	return ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		Customer:   p.CustomerID,
		Items:      items,
		TotalPrice: p.TotalPrice,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ProjectSummaryResponse is the list row: the project with its customer
// expanded, items left as bare ids.
type ProjectSummaryResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Customer   CustomerResponse      `json:"customer"`
	Items      []ProjectItemResponse `json:"items"`
	TotalPrice float64               `json:"totalPrice"`
	Status     string                `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func FromProjectSummaries(summaries []usecase.ProjectSummary) []ProjectSummaryResponse {
	out := make([]ProjectSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		flat := FromProject(s.Project)
		out = append(out, ProjectSummaryResponse{
			ID:         flat.ID,
			Name:       flat.Name,
			Customer:   FromCustomer(s.Customer),
			Items:      flat.Items,
			TotalPrice: flat.TotalPrice,
			Status:     flat.Status,
			CreatedAt:  flat.CreatedAt,
			UpdatedAt:  flat.UpdatedAt,
		})
	}
	return out
}

// ResolvedProjectItemResponse is the populated form the detail view
// consumes: template and material expanded in place of bare ids.
type ResolvedProjectItemResponse struct {
	Template              *TemplateResponse  `json:"template"`
	Params                map[string]float64 `json:"params"`
	Quantity              int                `json:"quantity"`
	Material              *MaterialResponse  `json:"material,omitempty"`
	MaterialPriceSnapshot *float64           `json:"materialPriceSnapshot,omitempty"`
	ManualPriceOverride   bool               `json:"manualPriceOverride"`
}

type ResolvedProjectResponse struct {
	ID         string                        `json:"id"`
	Name       string                        `json:"name"`
	Customer   CustomerResponse              `json:"customer"`
	Items      []ResolvedProjectItemResponse `json:"items"`
	TotalPrice float64                       `json:"totalPrice"`
	Status     string                        `json:"status"`
	CreatedAt  time.Time                     `json:"createdAt"`
	UpdatedAt  time.Time                     `json:"updatedAt"`
}

func FromResolvedProject(r entities.ResolvedProject) ResolvedProjectResponse {
	p := r.Project
	items := make([]ResolvedProjectItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		item := ResolvedProjectItemResponse{
			Params:                it.Params,
			Quantity:              it.Quantity,
			MaterialPriceSnapshot: it.MaterialPriceSnapshot,
			ManualPriceOverride:   it.ManualPriceOverride,
		}
		if tpl := r.Templates[it.TemplateID]; tpl != nil {
			t := FromTemplate(*tpl)
			item.Template = &t
		}
		if mat := r.Materials[it.MaterialID]; mat != nil {
			m := FromMaterial(*mat)
			item.Material = &m
		}
		items = append(items, item)
	}
	return ResolvedProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		Customer:   FromCustomer(r.Customer),
		Items:      items,
		TotalPrice: p.TotalPrice,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

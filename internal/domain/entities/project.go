package entities

import "time"

// ProjectItem is one configured product line inside a project.
//
// Snapshot semantics:
//   - MaterialPriceSnapshot freezes the material unit price at write time.
//     A nil snapshot means "not resolved yet": the server fills it from the
//     material's current price when the project is written (unless
//     ManualPriceOverride is set). Once set it is never refreshed
//     automatically; the client forces a refetch by sending the item with
//     the snapshot cleared.
//   - Params maps parameter slug to the entered value. Slugs missing from
//     the map evaluate as 0.
type ProjectItem struct {
	TemplateID            string             `json:"template"`
	Params                map[string]float64 `json:"params"`
	Quantity              int                `json:"quantity"`
	MaterialID            string             `json:"material,omitempty"`
	MaterialPriceSnapshot *float64           `json:"materialPriceSnapshot,omitempty"`
	ManualPriceOverride   bool               `json:"manualPriceOverride"`
}

// Project is the quote aggregate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Items are embedded; there is no standalone item entity. Updates
//     replace the whole document (last-write-wins).
//
// TotalPrice is a derived cache: the sum over items of unit price ×
// quantity, recomputed on every write. It can still drift when templates
// or materials change afterwards; the reconciliation pass re-derives and
// corrects it on demand.
type Project struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	CustomerID string         `json:"customer"`
	Items      []ProjectItem  `json:"items"`
	TotalPrice float64        `json:"totalPrice"`
	Status     PipelineStatus `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ResolvedProject is a project with its references expanded for detail
// views and quote export. Missing templates/materials are simply absent
// from the maps.
type ResolvedProject struct {
	Project   Project
	Customer  Customer
	Templates map[string]*ProductTemplate
	Materials map[string]*Material
}

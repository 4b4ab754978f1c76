// Package pricing derives item and project prices from template formulas
// and material price snapshots.
//
// Everything here is pure: the same items, templates and price lookup
// always produce the same numbers, whether called from the write path, the
// reconciliation pass or the quote export.
package pricing

import (
	"math"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/domain/formula"
)

// ResolveSnapshots fixes material prices onto items being written.
//
// An item gets its MaterialPriceSnapshot set from prices when it has a
// material, manual override is off and the snapshot is nil (the client
// clears the snapshot to force a refetch; omitting the field means the
// same). Items with an existing snapshot are never refreshed. A material
// id missing from prices leaves that item unresolved without failing the
// batch.
func ResolveSnapshots(items []entities.ProjectItem, prices map[string]float64) []entities.ProjectItem {
	if len(items) == 0 {
		return items
	}
	out := make([]entities.ProjectItem, len(items))
	copy(out, items)
	for i := range out {
		it := &out[i]
		if it.MaterialID == "" || it.ManualPriceOverride || it.MaterialPriceSnapshot != nil {
			continue
		}
		if price, ok := prices[it.MaterialID]; ok {
			p := price
			it.MaterialPriceSnapshot = &p
		}
	}
	return out
}

// UnitPrice computes the price of a single configured item.
//
// The material price is the item's snapshot when present, else the live
// price from prices, else 0. A nil template or empty formula prices as 0
// ("cannot price without template detail"), as do evaluation errors and
// negative or non-finite results: one bad formula must never poison a
// total with NaN.
func UnitPrice(item entities.ProjectItem, template *entities.ProductTemplate, prices map[string]float64) float64 {
	if template == nil || template.Formula == "" {
		return 0
	}

	materialPrice := 0.0
	switch {
	case item.MaterialPriceSnapshot != nil:
		materialPrice = *item.MaterialPriceSnapshot
	case item.MaterialID != "":
		materialPrice = prices[item.MaterialID]
	}

	scope := formula.Scope(item.Params, template.ParameterSlugs(), materialPrice)
	v, err := formula.Evaluate(template.Formula, scope)
	if err != nil {
		return 0
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ProjectTotal sums unit price × quantity over all items. Templates maps
// template id to its expanded definition; items whose template is missing
// contribute 0. Quantity below 1 counts as 1.
func ProjectTotal(items []entities.ProjectItem, templates map[string]*entities.ProductTemplate, prices map[string]float64) float64 {
	total := 0.0
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total += UnitPrice(it, templates[it.TemplateID], prices) * float64(qty)
	}
	return total
}

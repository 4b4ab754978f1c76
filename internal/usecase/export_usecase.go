package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/domain/pricing"
)

// QuoteLine is one printed row of the estimate.
type QuoteLine struct {
	ProductName  string             `json:"productName"`
	Params       map[string]float64 `json:"params"`
	MaterialName string             `json:"materialName,omitempty"`
	MaterialUnit string             `json:"materialUnit,omitempty"`
	Quantity     int                `json:"quantity"`
	UnitPrice    decimal.Decimal    `json:"unitPrice"`
	LineTotal    decimal.Decimal    `json:"lineTotal"`
}

// QuoteDocument is the renderer-ready estimate handed to the PDF layer.
// Figures are rounded to cents for printing; locale grouping and the
// currency suffix stay a presentation concern.
type QuoteDocument struct {
	ProjectID       string                  `json:"projectId"`
	ProjectName     string                  `json:"projectName"`
	CustomerName    string                  `json:"customerName"`
	CustomerContact string                  `json:"customerContact"`
	Status          entities.PipelineStatus `json:"status"`
	IssuedAt        time.Time               `json:"issuedAt"`
	Lines           []QuoteLine             `json:"lines"`
	GrandTotal      decimal.Decimal         `json:"grandTotal"`
}

// IExportUseCase builds the quote document for a project.
//
// The grand total is always re-derived from the items via the pricing
// core. The stored TotalPrice may be stale and must never reach the
// printed document.

type IExportUseCase interface {
	BuildQuote(ctx context.Context, projectID string) (QuoteDocument, error)
}

type ExportUseCase struct {
	projects IProjectUseCase
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(projects IProjectUseCase) *ExportUseCase {
	return &ExportUseCase{projects: projects}
}

func (u *ExportUseCase) BuildQuote(ctx context.Context, projectID string) (QuoteDocument, error) {
	resolved, err := u.projects.GetResolved(ctx, projectID)
	if err != nil {
		return QuoteDocument{}, err
	}
	return BuildQuoteDocument(resolved, time.Now().UTC()), nil
}

// BuildQuoteDocument derives the printable quote from a resolved project.
// Pure; split out so export parity can be tested without a store.
func BuildQuoteDocument(resolved entities.ResolvedProject, issuedAt time.Time) QuoteDocument {
	p := resolved.Project

	lines := make([]QuoteLine, 0, len(p.Items))
	for _, it := range p.Items {
		tpl := resolved.Templates[it.TemplateID]
		unit := pricing.UnitPrice(it, tpl, nil)

		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}

		line := QuoteLine{
			Params:    it.Params,
			Quantity:  qty,
			UnitPrice: decimal.NewFromFloat(unit).Round(2),
			LineTotal: decimal.NewFromFloat(unit * float64(qty)).Round(2),
		}
		if tpl != nil {
			line.ProductName = tpl.Name
		}
		if mat := resolved.Materials[it.MaterialID]; mat != nil {
			line.MaterialName = mat.Name
			line.MaterialUnit = mat.Unit
		}
		lines = append(lines, line)
	}

	// Same aggregation as the write path, rounded only at the very end.
	grand := pricing.ProjectTotal(p.Items, resolved.Templates, nil)

	return QuoteDocument{
		ProjectID:       p.ID,
		ProjectName:     p.Name,
		CustomerName:    resolved.Customer.Name,
		CustomerContact: resolved.Customer.ContactInfo,
		Status:          p.Status,
		IssuedAt:        issuedAt,
		Lines:           lines,
		GrandTotal:      decimal.NewFromFloat(grand).Round(2),
	}
}

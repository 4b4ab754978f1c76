package usecase

import (
	"context"
	"log"

	"github.com/m-bikko/kulsary-vent/internal/domain/pricing"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

// ReconcileReport summarizes one reconciliation pass.
//
// OrphanedItems counts project items whose template no longer resolves,
// the data-integrity condition that makes a line price as 0.
type ReconcileReport struct {
	TotalProjects int `json:"totalProjects"`
	Updated       int `json:"updated"`
	OrphanedItems int `json:"orphanedItems"`
}

// IReconcileUseCase is the on-demand maintenance pass over cached project
// totals.
//
// Stored totals drift when templates, materials or snapshots change after
// a project's last save. The pass re-derives every total from current
// items and snapshots and rewrites only the projects whose stored value
// differs, so a second consecutive run updates nothing.

type IReconcileUseCase interface {
	RecalculateTotals(ctx context.Context) (ReconcileReport, error)
}

type ReconcileUseCase struct {
	projectRepo  interfaces.IProjectRepository
	templateRepo interfaces.ITemplateRepository
	materialRepo interfaces.IMaterialRepository
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	projectRepo interfaces.IProjectRepository,
	templateRepo interfaces.ITemplateRepository,
	materialRepo interfaces.IMaterialRepository,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		projectRepo:  projectRepo,
		templateRepo: templateRepo,
		materialRepo: materialRepo,
	}
}

func (u *ReconcileUseCase) RecalculateTotals(ctx context.Context) (ReconcileReport, error) {
	projects, err := u.projectRepo.List(ctx)
	if err != nil {
		return ReconcileReport{}, err
	}

	templateIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		for _, it := range p.Items {
			templateIDs = append(templateIDs, it.TemplateID)
		}
	}
	templates, err := u.templateRepo.GetByIDs(ctx, templateIDs)
	if err != nil {
		return ReconcileReport{}, err
	}

	// Live prices only back items that never got a snapshot; frozen
	// snapshots always win inside the pricing core.
	materials, err := u.materialRepo.List(ctx)
	if err != nil {
		return ReconcileReport{}, err
	}
	prices := make(map[string]float64, len(materials))
	for _, m := range materials {
		prices[m.ID] = m.Price
	}

	report := ReconcileReport{TotalProjects: len(projects)}
	for _, p := range projects {
		for _, it := range p.Items {
			if templates[it.TemplateID] == nil {
				report.OrphanedItems++
			}
		}

		total := pricing.ProjectTotal(p.Items, templates, prices)
		if total == p.TotalPrice {
			continue
		}
		log.Printf("[reconcile] project %s total %v -> %v", p.ID, p.TotalPrice, total)
		p.TotalPrice = total
		written, err := u.projectRepo.Update(ctx, p)
		if err != nil {
			return report, err
		}
		// Zero value means the project was deleted mid-pass; the write
		// was skipped, so it must not count as updated.
		if written.ID == "" {
			continue
		}
		report.Updated++
	}

	log.Printf("[reconcile] done projects=%d updated=%d orphaned_items=%d",
		report.TotalProjects, report.Updated, report.OrphanedItems)
	return report, nil
}

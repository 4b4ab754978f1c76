package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/domain/pricing"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProject     = errors.New("invalid project")
	ErrInvalidProjectItem = errors.New("invalid project item")
)

// ProjectInput is the client-editable part of a project. Items arrive
// exactly as the configurator sends them: a nil MaterialPriceSnapshot
// (omitted or explicit null) asks the server to snapshot the current
// material price.
type ProjectInput struct {
	Name       string
	CustomerID string
	Status     entities.PipelineStatus
	Items      []entities.ProjectItem
}

// ProjectSummary pairs a project with its customer for list views. A
// customer deleted after the project was created comes back zero-valued.
type ProjectSummary struct {
	Project  entities.Project
	Customer entities.Customer
}

// IProjectUseCase exposes the quote aggregate.
//
// Every write runs the same pipeline: validate → batched material price
// lookup → snapshot resolution → total recomputation → whole-document
// persist. The stored TotalPrice therefore always matches what the
// configurator previewed, given the same resolved prices.

type IProjectUseCase interface {
	Create(ctx context.Context, in ProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetResolved(ctx context.Context, id string) (entities.ResolvedProject, error)
	List(ctx context.Context) ([]ProjectSummary, error)
	Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectUseCase struct {
	repo         interfaces.IProjectRepository
	templateRepo interfaces.ITemplateRepository
	materialRepo interfaces.IMaterialRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	templateRepo interfaces.ITemplateRepository,
	materialRepo interfaces.IMaterialRepository,
	customerRepo interfaces.ICustomerRepository,
) *ProjectUseCase {
	return &ProjectUseCase{
		repo:         repo,
		templateRepo: templateRepo,
		materialRepo: materialRepo,
		customerRepo: customerRepo,
	}
}

func (u *ProjectUseCase) Create(ctx context.Context, in ProjectInput) (entities.Project, error) {
	if err := validateProjectInput(&in); err != nil {
		return entities.Project{}, err
	}

	items, total, err := u.prepareItems(ctx, in.Items)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:         uuid.NewString(),
		Name:       in.Name,
		CustomerID: in.CustomerID,
		Items:      items,
		TotalPrice: total,
		Status:     in.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProject
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// GetResolved loads a project with templates, materials and customer
// expanded, the form the detail view and the quote export consume.
func (u *ProjectUseCase) GetResolved(ctx context.Context, id string) (entities.ResolvedProject, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ResolvedProject{}, err
	}

	templateIDs := make([]string, 0, len(p.Items))
	materialIDs := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		templateIDs = append(templateIDs, it.TemplateID)
		if it.MaterialID != "" {
			materialIDs = append(materialIDs, it.MaterialID)
		}
	}

	templates, err := u.templateRepo.GetByIDs(ctx, templateIDs)
	if err != nil {
		return entities.ResolvedProject{}, err
	}
	materials, err := u.materialRepo.GetByIDs(ctx, materialIDs)
	if err != nil {
		return entities.ResolvedProject{}, err
	}
	customer, err := u.customerRepo.GetByID(ctx, p.CustomerID)
	if err != nil {
		return entities.ResolvedProject{}, err
	}

	return entities.ResolvedProject{
		Project:   p,
		Customer:  customer,
		Templates: templates,
		Materials: materials,
	}, nil
}

// List returns projects newest first with their customers attached;
// DynamoDB scans come back unordered. Customers are resolved from one
// scan of the (small) customer table rather than per-project gets.
func (u *ProjectUseCase) List(ctx context.Context) ([]ProjectSummary, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := u.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ProjectSummary{Project: p, Customer: byID[p.CustomerID]})
	}
	return summaries, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if err := validateProjectInput(&in); err != nil {
		return entities.Project{}, err
	}

	items, total, err := u.prepareItems(ctx, in.Items)
	if err != nil {
		return entities.Project{}, err
	}

	existing.Name = in.Name
	existing.CustomerID = in.CustomerID
	existing.Status = in.Status
	existing.Items = items
	existing.TotalPrice = total
	existing.UpdatedAt = time.Now().UTC()

	// The repository answers a zero value when the row vanished between
	// the read above and the conditional write.
	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProject
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

// prepareItems resolves snapshots and recomputes the project total, the
// server-side half of the price consistency contract.
func (u *ProjectUseCase) prepareItems(ctx context.Context, items []entities.ProjectItem) ([]entities.ProjectItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, nil
	}

	// One batched lookup for everything the items reference; the resolver
	// and the total computation share it.
	materialIDs := make([]string, 0, len(items))
	templateIDs := make([]string, 0, len(items))
	for _, it := range items {
		if it.MaterialID != "" {
			materialIDs = append(materialIDs, it.MaterialID)
		}
		templateIDs = append(templateIDs, it.TemplateID)
	}

	prices, err := u.materialRepo.GetPricesByIDs(ctx, materialIDs)
	if err != nil {
		return nil, 0, err
	}
	items = pricing.ResolveSnapshots(items, prices)

	templates, err := u.templateRepo.GetByIDs(ctx, templateIDs)
	if err != nil {
		return nil, 0, err
	}
	return items, pricing.ProjectTotal(items, templates, prices), nil
}

func validateProjectInput(in *ProjectInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.Name == "" || in.CustomerID == "" {
		return ErrInvalidProject
	}
	if in.Status == "" {
		in.Status = entities.StatusNew
	}
	if !in.Status.Valid() {
		return ErrInvalidProject
	}
	for i := range in.Items {
		it := &in.Items[i]
		it.TemplateID = strings.TrimSpace(it.TemplateID)
		if it.TemplateID == "" {
			return ErrInvalidProjectItem
		}
		if it.Quantity < 1 {
			return ErrInvalidProjectItem
		}
	}
	return nil
}

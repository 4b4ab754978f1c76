package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrInvalidLead  = errors.New("invalid lead")
)

// LeadInput is the client-editable part of a lead.
type LeadInput struct {
	Title          string
	Description    string
	Status         entities.PipelineStatus
	CustomerID     string
	ProjectID      string
	EstimatedValue float64
	Source         string
}

// ILeadUseCase exposes the sales kanban. Leads live independently of
// projects; the project link is optional metadata.

type ILeadUseCase interface {
	Create(ctx context.Context, in LeadInput) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, error)
	Update(ctx context.Context, id string, in LeadInput) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Create(ctx context.Context, in LeadInput) (entities.Lead, error) {
	if err := validateLeadInput(&in); err != nil {
		return entities.Lead{}, err
	}

	now := time.Now().UTC()
	l := entities.Lead{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		CustomerID:     in.CustomerID,
		ProjectID:      in.ProjectID,
		EstimatedValue: in.EstimatedValue,
		Source:         in.Source,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, l)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLead
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, error) {
	leads, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.Slice(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

func (u *LeadUseCase) Update(ctx context.Context, id string, in LeadInput) (entities.Lead, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if err := validateLeadInput(&in); err != nil {
		return entities.Lead{}, err
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.Status = in.Status
	existing.CustomerID = in.CustomerID
	existing.ProjectID = in.ProjectID
	existing.EstimatedValue = in.EstimatedValue
	existing.Source = in.Source
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLead
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLeadNotFound
	}
	return nil
}

func validateLeadInput(in *LeadInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	if in.Title == "" || in.CustomerID == "" {
		return ErrInvalidLead
	}
	if in.Status == "" {
		in.Status = entities.StatusNew
	}
	if !in.Status.Valid() {
		return ErrInvalidLead
	}
	if in.Source == "" {
		in.Source = "manual"
	}
	return nil
}

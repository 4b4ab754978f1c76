package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrInvalidMaterial  = errors.New("invalid material")
)

// IMaterialUseCase exposes raw-material catalog operations.
//
// Price edits here never rewrite snapshots already frozen onto project
// items; they only affect future snapshot resolution.

type IMaterialUseCase interface {
	Create(ctx context.Context, name string, price float64, unit string) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, id, name string, price float64, unit string) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (u *MaterialUseCase) Create(ctx context.Context, name string, price float64, unit string) (entities.Material, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" || unit == "" || price < 0 {
		return entities.Material{}, ErrInvalidMaterial
	}

	m := entities.Material{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Unit:      unit,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, m)
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterial
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.List(ctx)
}

func (u *MaterialUseCase) Update(ctx context.Context, id, name string, price float64, unit string) (entities.Material, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}

	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" || unit == "" || price < 0 {
		return entities.Material{}, ErrInvalidMaterial
	}

	existing.Name = name
	existing.Price = price
	existing.Unit = unit
	return u.repo.Update(ctx, existing)
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMaterial
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMaterialNotFound
	}
	return nil
}

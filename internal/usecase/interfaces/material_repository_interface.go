package interfaces

import (
	"context"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

// IMaterialRepository abstracts DynamoDB persistence for Material.
//
// GetPricesByIDs is the batched lookup the snapshot resolver runs once per
// project write; ids not found are simply absent from the returned map.

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entities.Material, error)
	GetPricesByIDs(ctx context.Context, ids []string) (map[string]float64, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package interfaces

import (
	"context"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

// ITemplateRepository abstracts DynamoDB persistence for ProductTemplate.
//
// GetByIDs powers total recomputation and export, where every item's
// formula must be available in expanded form.

type ITemplateRepository interface {
	Create(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error)
	GetByID(ctx context.Context, id string) (entities.ProductTemplate, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entities.ProductTemplate, error)
	List(ctx context.Context) ([]entities.ProductTemplate, error)
	Update(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error)
	Delete(ctx context.Context, id string) (bool, error)
}

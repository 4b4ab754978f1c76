package interfaces

import (
	"context"
	"time"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

// LeadFilter narrows lead listings by creation time. Zero bounds are open.
type LeadFilter struct {
	From time.Time
	To   time.Time
}

// ILeadRepository abstracts DynamoDB persistence for Lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}

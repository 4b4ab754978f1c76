package interfaces

import (
	"context"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// A missing customer is a zero-value entity, not an error; use cases decide
// whether that is a not-found condition.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

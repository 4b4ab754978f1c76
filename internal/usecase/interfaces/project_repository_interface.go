package interfaces

import (
	"context"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for the Project
// aggregate.
//
// Update replaces the whole document (items included). There is no version
// check: concurrent editors of the same project overwrite each other,
// last write wins. Accepted limitation for the target scale.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

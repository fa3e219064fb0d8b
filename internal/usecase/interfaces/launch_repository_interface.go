package interfaces

import (
	"context"
	"errors"
	"time"

	"gestao_servicos/internal/domain/entities"
)

// ErrDuplicateID is returned by Create when the generated key already exists.
// Keys are wall-clock derived, so two saves inside the same second collide;
// the use case retries with a collision-resistant suffix.
var ErrDuplicateID = errors.New("duplicate id")

// ILaunchRepository abstracts DynamoDB persistence for Launch.
//
// The store contract mirrors the remote key-value collections the operator
// screens work against:
//   - Create: conditional put of a new record under a generated id
//   - Put: full replace (the screens always submit the whole form)
//   - field setters: partial merges for the nested structures so attaching a
//     plan or logging work never rewrites the financial fields
//   - ListAll: full-collection read; callers rebuild their view from it

type ILaunchRepository interface {
	Create(ctx context.Context, l entities.Launch) (entities.Launch, error)
	Put(ctx context.Context, l entities.Launch) (entities.Launch, error)
	GetByID(ctx context.Context, id string) (entities.Launch, error)
	ListAll(ctx context.Context) ([]entities.Launch, error)
	Delete(ctx context.Context, id string) error
	SetProcessedDate(ctx context.Context, id string, processed time.Time) (entities.Launch, error)
	SetInstallmentPlan(ctx context.Context, id string, plan *entities.InstallmentPlan) (entities.Launch, error)
	SetWorkHistory(ctx context.Context, id string, entries []entities.WorkEntry) (entities.Launch, error)
}

package interfaces

import (
	"context"

	"gestao_servicos/internal/domain/entities"
)

// IWithdrawalRepository abstracts DynamoDB persistence for Withdrawal.

type IWithdrawalRepository interface {
	Create(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error)
	Put(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error)
	GetByID(ctx context.Context, id string) (entities.Withdrawal, error)
	ListAll(ctx context.Context) ([]entities.Withdrawal, error)
	Delete(ctx context.Context, id string) error
}

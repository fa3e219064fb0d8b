package usecase

import (
	"context"
	"errors"
	"time"

	"gestao_servicos/internal/domain/listing"
	"gestao_servicos/internal/usecase/interfaces"
)

var ErrInvalidPeriod = errors.New("invalid summary period")

// ISummaryUseCase produces the financial summary of a reporting period.
type ISummaryUseCase interface {
	Summarize(ctx context.Context, start, end time.Time) (listing.Summary, error)
}

type SummaryUseCase struct {
	launches    interfaces.ILaunchRepository
	withdrawals interfaces.IWithdrawalRepository
}

var _ ISummaryUseCase = (*SummaryUseCase)(nil)

func NewSummaryUseCase(launches interfaces.ILaunchRepository, withdrawals interfaces.IWithdrawalRepository) *SummaryUseCase {
	return &SummaryUseCase{launches: launches, withdrawals: withdrawals}
}

func (u *SummaryUseCase) Summarize(ctx context.Context, start, end time.Time) (listing.Summary, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return listing.Summary{}, ErrInvalidPeriod
	}

	launches, err := u.launches.ListAll(ctx)
	if err != nil {
		return listing.Summary{}, err
	}
	withdrawals, err := u.withdrawals.ListAll(ctx)
	if err != nil {
		return listing.Summary{}, err
	}
	return listing.Summarize(launches, withdrawals, start, end), nil
}

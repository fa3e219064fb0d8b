package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
	"gestao_servicos/internal/usecase/interfaces"
)

var (
	ErrWithdrawalNotFound      = errors.New("withdrawal not found")
	ErrInvalidWithdrawalID     = errors.New("invalid withdrawal id")
	ErrInvalidWithdrawalDesc   = errors.New("invalid withdrawal description")
	ErrInvalidWithdrawalAmount = errors.New("invalid withdrawal amount")
	ErrWithdrawalAmountTooFine = errors.New("withdrawal amount has more than two decimal places")
	ErrInvalidWithdrawalDate   = errors.New("invalid withdrawal date")
	ErrInvalidWithdrawalFields = errors.New("invalid withdrawal category or method")
)

// IWithdrawalUseCase exposes the withdrawal screen operations.
type IWithdrawalUseCase interface {
	Create(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error)
	Update(ctx context.Context, id string, w entities.Withdrawal) (entities.Withdrawal, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Withdrawal, error)
	List(ctx context.Context) (listing.WithdrawalPage, float64, error)
}

type WithdrawalUseCase struct {
	repo interfaces.IWithdrawalRepository
}

var _ IWithdrawalUseCase = (*WithdrawalUseCase)(nil)

func NewWithdrawalUseCase(repo interfaces.IWithdrawalRepository) *WithdrawalUseCase {
	return &WithdrawalUseCase{repo: repo}
}

func validateWithdrawal(w entities.Withdrawal) error {
	if strings.TrimSpace(w.Description) == "" {
		return ErrInvalidWithdrawalDesc
	}
	if w.Amount <= 0 {
		return ErrInvalidWithdrawalAmount
	}
	// Cents are the finest unit the books keep.
	if math.Abs(w.Amount*100-math.Round(w.Amount*100)) > 1e-9 {
		return ErrWithdrawalAmountTooFine
	}
	if w.WithdrawalDate.IsZero() {
		return ErrInvalidWithdrawalDate
	}
	if !w.Category.Valid() || !w.Method.Valid() {
		return ErrInvalidWithdrawalFields
	}
	return nil
}

func (u *WithdrawalUseCase) Create(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
	w.Description = strings.TrimSpace(w.Description)
	if err := validateWithdrawal(w); err != nil {
		return entities.Withdrawal{}, err
	}

	now := time.Now().UTC()
	w.ID = newRecordID(now)
	w.CreatedAt = now
	w.UpdatedAt = now

	created, err := u.repo.Create(ctx, w)
	if errors.Is(err, interfaces.ErrDuplicateID) {
		w.ID = suffixedRecordID(now)
		created, err = u.repo.Create(ctx, w)
	}
	if err != nil {
		return entities.Withdrawal{}, err
	}
	return created, nil
}

func (u *WithdrawalUseCase) Update(ctx context.Context, id string, w entities.Withdrawal) (entities.Withdrawal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Withdrawal{}, ErrInvalidWithdrawalID
	}
	w.Description = strings.TrimSpace(w.Description)
	if err := validateWithdrawal(w); err != nil {
		return entities.Withdrawal{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Withdrawal{}, err
	}
	if existing.ID == "" {
		return entities.Withdrawal{}, ErrWithdrawalNotFound
	}

	w.ID = id
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, w)
}

func (u *WithdrawalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWithdrawalID
	}
	return u.repo.Delete(ctx, id)
}

func (u *WithdrawalUseCase) GetByID(ctx context.Context, id string) (entities.Withdrawal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Withdrawal{}, ErrInvalidWithdrawalID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Withdrawal{}, err
	}
	if w.ID == "" {
		return entities.Withdrawal{}, ErrWithdrawalNotFound
	}
	return w, nil
}

// List returns the most recent withdrawals first, truncated for display, plus
// the running total for the current calendar month.
func (u *WithdrawalUseCase) List(ctx context.Context) (listing.WithdrawalPage, float64, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return listing.WithdrawalPage{}, 0, err
	}
	page := listing.TruncateWithdrawals(listing.SortWithdrawals(all))
	monthTotal := listing.MonthTotal(all, time.Now())
	return page, monthTotal, nil
}

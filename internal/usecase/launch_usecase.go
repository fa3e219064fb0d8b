package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gestao_servicos/internal/domain/calc"
	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
	"gestao_servicos/internal/usecase/interfaces"
)

var (
	ErrLaunchNotFound        = errors.New("launch not found")
	ErrInvalidLaunchID       = errors.New("invalid launch id")
	ErrInvalidCustomer       = errors.New("invalid customer")
	ErrInvalidDeposit        = errors.New("invalid deposit value")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrReasonRequired        = errors.New("reason required for awaiting status")
	ErrInvalidInstallments   = errors.New("invalid installment parameters")
	ErrPlanNotFound          = errors.New("installment plan not found")
	ErrInstallmentNotFound   = errors.New("installment not found")
	ErrInvalidInstallmentVal = errors.New("invalid installment value")
	ErrInvalidWorkEntry      = errors.New("invalid work entry")
	ErrWorkEntryNotFound     = errors.New("work entry not found")
)

// ILaunchUseCase exposes the launch screen operations: the CRUD the form
// drives, the filtered/sorted/truncated list, the installment plan and the
// work log.
type ILaunchUseCase interface {
	Create(ctx context.Context, l entities.Launch) (entities.Launch, error)
	Update(ctx context.Context, id string, l entities.Launch) (entities.Launch, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Launch, error)
	List(ctx context.Context, statusFilter string, mode listing.SortMode) (listing.LaunchPage, error)

	AttachInstallmentPlan(ctx context.Context, id string, method entities.PaymentMethod, count int, firstDue time.Time) (entities.Launch, error)
	OverrideInstallment(ctx context.Context, id string, number int, baseValue float64) (entities.Launch, error)

	AddWorkEntry(ctx context.Context, id string, entry entities.WorkEntry) (entities.Launch, error)
	UpdateWorkEntry(ctx context.Context, id string, index int, entry entities.WorkEntry) (entities.Launch, error)
	RemoveWorkEntry(ctx context.Context, id string, index int) (entities.Launch, error)
}

type LaunchUseCase struct {
	repo interfaces.ILaunchRepository
}

var _ ILaunchUseCase = (*LaunchUseCase)(nil)

func NewLaunchUseCase(repo interfaces.ILaunchRepository) *LaunchUseCase {
	return &LaunchUseCase{repo: repo}
}

// applyDerived recomputes the dependent numeric fields from the edited inputs
// and enforces the Reason/Status pairing. Stored legacy values only survive
// until the record is written again.
func applyDerived(l *entities.Launch) error {
	if l.Status == "" {
		l.Status = entities.LaunchStatusCompleted
	}
	if !l.Status.Valid() {
		return ErrInvalidStatus
	}
	if l.Status == entities.LaunchStatusAwaiting {
		if strings.TrimSpace(l.Reason) == "" {
			return ErrReasonRequired
		}
	} else {
		l.Reason = ""
	}

	l.Profit = calc.Profit(l.Deposit, l.Expenses)
	l.NetProfit, _ = calc.NetProfit(l.Profit, l.Discount)
	l.PercExpenses = calc.ExpensePercentage(l.Deposit, l.Expenses)
	return nil
}

func validateLaunch(l entities.Launch) error {
	if strings.TrimSpace(l.Customer) == "" {
		return ErrInvalidCustomer
	}
	if l.Deposit <= 0 {
		return ErrInvalidDeposit
	}
	if l.Expenses < 0 || l.Discount < 0 {
		return ErrInvalidDeposit
	}
	return nil
}

func (u *LaunchUseCase) Create(ctx context.Context, l entities.Launch) (entities.Launch, error) {
	l.Customer = strings.TrimSpace(l.Customer)
	if err := validateLaunch(l); err != nil {
		return entities.Launch{}, err
	}
	if err := applyDerived(&l); err != nil {
		return entities.Launch{}, err
	}

	now := time.Now().UTC()
	l.ID = newRecordID(now)
	l.CreatedAt = now
	l.UpdatedAt = now

	created, err := u.repo.Create(ctx, l)
	if errors.Is(err, interfaces.ErrDuplicateID) {
		// Two saves inside the same second. Keep the wall-clock prefix the
		// historical keys use and retry once with a collision-proof suffix.
		l.ID = suffixedRecordID(now)
		created, err = u.repo.Create(ctx, l)
	}
	if err != nil {
		return entities.Launch{}, err
	}
	return created, nil
}

func (u *LaunchUseCase) Update(ctx context.Context, id string, l entities.Launch) (entities.Launch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Launch{}, ErrInvalidLaunchID
	}
	l.Customer = strings.TrimSpace(l.Customer)
	if err := validateLaunch(l); err != nil {
		return entities.Launch{}, err
	}
	if err := applyDerived(&l); err != nil {
		return entities.Launch{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Launch{}, err
	}
	if existing.ID == "" {
		return entities.Launch{}, ErrLaunchNotFound
	}

	// The form never edits the nested structures; carry them over.
	l.ID = id
	l.Plan = existing.Plan
	l.WorkHistory = existing.WorkHistory
	l.CreatedAt = existing.CreatedAt
	l.UpdatedAt = time.Now().UTC()

	return u.repo.Put(ctx, l)
}

func (u *LaunchUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLaunchID
	}
	return u.repo.Delete(ctx, id)
}

func (u *LaunchUseCase) GetByID(ctx context.Context, id string) (entities.Launch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Launch{}, ErrInvalidLaunchID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Launch{}, err
	}
	if l.ID == "" {
		return entities.Launch{}, ErrLaunchNotFound
	}
	return l, nil
}

// List rebuilds the screen's view from a full-collection read, then filters,
// sorts and truncates in memory. The store is small enough that rereading
// everything on every render is the simplest correct behavior.
func (u *LaunchUseCase) List(ctx context.Context, statusFilter string, mode listing.SortMode) (listing.LaunchPage, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return listing.LaunchPage{}, err
	}
	filtered := listing.FilterByStatus(all, statusFilter)
	sorted := listing.SortLaunches(filtered, mode)
	return listing.TruncateLaunches(sorted), nil
}

func (u *LaunchUseCase) AttachInstallmentPlan(ctx context.Context, id string, method entities.PaymentMethod, count int, firstDue time.Time) (entities.Launch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Launch{}, ErrInvalidLaunchID
	}
	if !method.Valid() || count < 1 || firstDue.IsZero() {
		return entities.Launch{}, ErrInvalidInstallments
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Launch{}, err
	}
	if l.ID == "" {
		return entities.Launch{}, ErrLaunchNotFound
	}

	plan := &entities.InstallmentPlan{
		PaymentMethod:    method,
		InstallmentCount: count,
		FirstDueDate:     firstDue,
		Installments:     calc.BuildInstallments(l.Deposit, count, method, firstDue),
	}
	return u.repo.SetInstallmentPlan(ctx, id, plan)
}

func (u *LaunchUseCase) OverrideInstallment(ctx context.Context, id string, number int, baseValue float64) (entities.Launch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Launch{}, ErrInvalidLaunchID
	}
	if baseValue <= 0 {
		return entities.Launch{}, ErrInvalidInstallmentVal
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Launch{}, err
	}
	if l.ID == "" {
		return entities.Launch{}, ErrLaunchNotFound
	}
	if l.Plan == nil {
		return entities.Launch{}, ErrPlanNotFound
	}
	if !calc.OverrideBaseValue(l.Plan, number, baseValue) {
		return entities.Launch{}, ErrInstallmentNotFound
	}
	return u.repo.SetInstallmentPlan(ctx, id, l.Plan)
}

func validateWorkEntry(e entities.WorkEntry) error {
	if e.Date.IsZero() || e.Hours <= 0 {
		return ErrInvalidWorkEntry
	}
	return nil
}

// sortWorkHistory keeps the log ordered by date descending, the order every
// mutation must restore.
func sortWorkHistory(entries []entities.WorkEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].Date.Before(entries[i].Date)
	})
}

func (u *LaunchUseCase) AddWorkEntry(ctx context.Context, id string, entry entities.WorkEntry) (entities.Launch, error) {
	return u.mutateWorkHistory(ctx, id, func(entries []entities.WorkEntry) ([]entities.WorkEntry, error) {
		if err := validateWorkEntry(entry); err != nil {
			return nil, err
		}
		return append(entries, entry), nil
	})
}

func (u *LaunchUseCase) UpdateWorkEntry(ctx context.Context, id string, index int, entry entities.WorkEntry) (entities.Launch, error) {
	return u.mutateWorkHistory(ctx, id, func(entries []entities.WorkEntry) ([]entities.WorkEntry, error) {
		if err := validateWorkEntry(entry); err != nil {
			return nil, err
		}
		if index < 0 || index >= len(entries) {
			return nil, ErrWorkEntryNotFound
		}
		entries[index] = entry
		return entries, nil
	})
}

func (u *LaunchUseCase) RemoveWorkEntry(ctx context.Context, id string, index int) (entities.Launch, error) {
	return u.mutateWorkHistory(ctx, id, func(entries []entities.WorkEntry) ([]entities.WorkEntry, error) {
		if index < 0 || index >= len(entries) {
			return nil, ErrWorkEntryNotFound
		}
		return append(entries[:index], entries[index+1:]...), nil
	})
}

func (u *LaunchUseCase) mutateWorkHistory(ctx context.Context, id string, mutate func([]entities.WorkEntry) ([]entities.WorkEntry, error)) (entities.Launch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Launch{}, ErrInvalidLaunchID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Launch{}, err
	}
	if l.ID == "" {
		return entities.Launch{}, ErrLaunchNotFound
	}

	entries := make([]entities.WorkEntry, len(l.WorkHistory))
	copy(entries, l.WorkHistory)

	entries, err = mutate(entries)
	if err != nil {
		return entities.Launch{}, err
	}
	sortWorkHistory(entries)

	return u.repo.SetWorkHistory(ctx, id, entries)
}

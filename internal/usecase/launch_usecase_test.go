package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
	"gestao_servicos/internal/usecase/interfaces"
	mock_interfaces "gestao_servicos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var recordIDPattern = regexp.MustCompile(`^\d{14}(-[0-9a-f]{8})?$`)

func validLaunch() entities.Launch {
	return entities.Launch{
		Customer:    "Maria",
		Business:    "Padaria Central",
		Description: "identidade visual",
		Status:      entities.LaunchStatusInProgress,
		Deposit:     500,
		Expenses:    120,
		Discount:    30,
		Request:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLaunchUseCase_Create(t *testing.T) {
	t.Run("missing customer", func(t *testing.T) {
		uc := NewLaunchUseCase(nil)
		l := validLaunch()
		l.Customer = "   "
		_, err := uc.Create(context.Background(), l)
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("non positive deposit", func(t *testing.T) {
		uc := NewLaunchUseCase(nil)
		l := validLaunch()
		l.Deposit = 0
		_, err := uc.Create(context.Background(), l)
		if !errors.Is(err, ErrInvalidDeposit) {
			t.Fatalf("expected ErrInvalidDeposit, got %v", err)
		}
	})

	t.Run("awaiting requires reason", func(t *testing.T) {
		uc := NewLaunchUseCase(nil)
		l := validLaunch()
		l.Status = entities.LaunchStatusAwaiting
		l.Reason = ""
		_, err := uc.Create(context.Background(), l)
		if !errors.Is(err, ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc := NewLaunchUseCase(nil)
		l := validLaunch()
		l.Status = "9"
		_, err := uc.Create(context.Background(), l)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("create success with derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Launch{})).DoAndReturn(
			func(_ context.Context, l entities.Launch) (entities.Launch, error) {
				if !recordIDPattern.MatchString(l.ID) {
					t.Fatalf("unexpected id format: %q", l.ID)
				}
				if l.Profit != 380 || l.NetProfit != 350 || l.PercExpenses != 24 {
					t.Fatalf("unexpected derived fields: %+v", l)
				}
				if l.CreatedAt.IsZero() || l.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return l, nil
			},
		)

		res, err := uc.Create(context.Background(), validLaunch())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("retries with suffix on same second collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		first := repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Launch{}, interfaces.ErrDuplicateID)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, l entities.Launch) (entities.Launch, error) {
				if !recordIDPattern.MatchString(l.ID) || len(l.ID) == 14 {
					t.Fatalf("expected suffixed id, got %q", l.ID)
				}
				return l, nil
			},
		)

		if _, err := uc.Create(context.Background(), validLaunch()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reason stripped outside awaiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Launch) (entities.Launch, error) {
				if l.Reason != "" {
					t.Fatalf("expected reason stripped, got %q", l.Reason)
				}
				return l, nil
			},
		)

		l := validLaunch()
		l.Reason = "esperando aprovação"
		if _, err := uc.Create(context.Background(), l); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLaunchUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewLaunchUseCase(nil)
		_, err := uc.Update(context.Background(), "  ", validLaunch())
		if !errors.Is(err, ErrInvalidLaunchID) {
			t.Fatalf("expected ErrInvalidLaunchID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "20240101000000").Return(entities.Launch{}, nil)

		_, err := uc.Update(context.Background(), "20240101000000", validLaunch())
		if !errors.Is(err, ErrLaunchNotFound) {
			t.Fatalf("expected ErrLaunchNotFound, got %v", err)
		}
	})

	t.Run("keeps nested structures and created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		existing := entities.Launch{
			ID:        "20240101000000",
			CreatedAt: created,
			Plan:      &entities.InstallmentPlan{PaymentMethod: entities.PaymentMethodPix, InstallmentCount: 2},
			WorkHistory: []entities.WorkEntry{
				{Date: created, Hours: 2, Description: "briefing"},
			},
		}
		repo.EXPECT().GetByID(gomock.Any(), "20240101000000").Return(existing, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Launch) (entities.Launch, error) {
				if l.ID != "20240101000000" || !l.CreatedAt.Equal(created) {
					t.Fatalf("identity not preserved: %+v", l)
				}
				if l.Plan == nil || len(l.WorkHistory) != 1 {
					t.Fatalf("nested structures dropped: %+v", l)
				}
				return l, nil
			},
		)

		if _, err := uc.Update(context.Background(), "20240101000000", validLaunch()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLaunchUseCase_List(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background(), listing.StatusFilterAll, listing.SortDefault)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("filters sorts and truncates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		all := make([]entities.Launch, 0, 13)
		for i := 0; i < 12; i++ {
			all = append(all, entities.Launch{
				ID:            string(rune('a' + i)),
				Status:        entities.LaunchStatusCompleted,
				ProcessedDate: time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
			})
		}
		all = append(all, entities.Launch{ID: "wip", Status: entities.LaunchStatusInProgress})
		repo.EXPECT().ListAll(gomock.Any()).Return(all, nil)

		page, err := uc.List(context.Background(), listing.StatusFilterAll, listing.SortDefault)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 13 || page.Shown != listing.DisplayMax {
			t.Fatalf("unexpected counts: %+v", page)
		}
		if page.Items[0].ID != "wip" {
			t.Fatalf("expected in-progress first, got %s", page.Items[0].ID)
		}
	})
}

func TestLaunchUseCase_InstallmentPlan(t *testing.T) {
	firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("invalid parameters", func(t *testing.T) {
		uc := NewLaunchUseCase(nil)
		_, err := uc.AttachInstallmentPlan(context.Background(), "id-1", "boleto", 3, firstDue)
		if !errors.Is(err, ErrInvalidInstallments) {
			t.Fatalf("expected ErrInvalidInstallments, got %v", err)
		}
		_, err = uc.AttachInstallmentPlan(context.Background(), "id-1", entities.PaymentMethodPix, 0, firstDue)
		if !errors.Is(err, ErrInvalidInstallments) {
			t.Fatalf("expected ErrInvalidInstallments, got %v", err)
		}
	})

	t.Run("attach builds from deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Launch{ID: "id-1", Deposit: 300}, nil)
		repo.EXPECT().SetInstallmentPlan(gomock.Any(), "id-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, plan *entities.InstallmentPlan) (entities.Launch, error) {
				if len(plan.Installments) != 3 || plan.Installments[0].BaseValue != 100 {
					t.Fatalf("unexpected plan: %+v", plan)
				}
				return entities.Launch{ID: "id-1", Plan: plan}, nil
			},
		)

		if _, err := uc.AttachInstallmentPlan(context.Background(), "id-1", entities.PaymentMethodPix, 3, firstDue); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("override without plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Launch{ID: "id-1"}, nil)

		_, err := uc.OverrideInstallment(context.Background(), "id-1", 1, 50)
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("override unknown installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		l := entities.Launch{ID: "id-1", Plan: &entities.InstallmentPlan{
			PaymentMethod: entities.PaymentMethodPix,
			Installments:  []entities.Installment{{Number: 1, BaseValue: 100, FinalValue: 100}},
		}}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(l, nil)

		_, err := uc.OverrideInstallment(context.Background(), "id-1", 5, 50)
		if !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})
}

func TestLaunchUseCase_WorkEntries(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC) }

	t.Run("invalid entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Launch{ID: "id-1"}, nil)

		_, err := uc.AddWorkEntry(context.Background(), "id-1", entities.WorkEntry{Date: d(1), Hours: 0})
		if !errors.Is(err, ErrInvalidWorkEntry) {
			t.Fatalf("expected ErrInvalidWorkEntry, got %v", err)
		}
	})

	t.Run("add keeps date descending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		l := entities.Launch{ID: "id-1", WorkHistory: []entities.WorkEntry{
			{Date: d(10), Hours: 3, Description: "layout"},
			{Date: d(2), Hours: 1, Description: "briefing"},
		}}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(l, nil)
		repo.EXPECT().SetWorkHistory(gomock.Any(), "id-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, entries []entities.WorkEntry) (entities.Launch, error) {
				if len(entries) != 3 {
					t.Fatalf("expected 3 entries, got %d", len(entries))
				}
				if !entries[0].Date.Equal(d(10)) || !entries[1].Date.Equal(d(5)) || !entries[2].Date.Equal(d(2)) {
					t.Fatalf("unexpected order: %+v", entries)
				}
				return entities.Launch{ID: "id-1", WorkHistory: entries}, nil
			},
		)

		_, err := uc.AddWorkEntry(context.Background(), "id-1", entities.WorkEntry{Date: d(5), Hours: 2, Description: "revisão"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove by index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		l := entities.Launch{ID: "id-1", WorkHistory: []entities.WorkEntry{{Date: d(1), Hours: 1}}}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(l, nil)

		_, err := uc.RemoveWorkEntry(context.Background(), "id-1", 4)
		if !errors.Is(err, ErrWorkEntryNotFound) {
			t.Fatalf("expected ErrWorkEntryNotFound, got %v", err)
		}
	})

	t.Run("update replaces and resorts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILaunchRepository(ctrl)
		uc := NewLaunchUseCase(repo)

		l := entities.Launch{ID: "id-1", WorkHistory: []entities.WorkEntry{
			{Date: d(10), Hours: 3},
			{Date: d(2), Hours: 1},
		}}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(l, nil)
		repo.EXPECT().SetWorkHistory(gomock.Any(), "id-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, entries []entities.WorkEntry) (entities.Launch, error) {
				// Entry 1 moved to day 20, so it now leads the log.
				if !entries[0].Date.Equal(d(20)) || !entries[1].Date.Equal(d(10)) {
					t.Fatalf("unexpected order: %+v", entries)
				}
				return entities.Launch{ID: "id-1", WorkHistory: entries}, nil
			},
		)

		_, err := uc.UpdateWorkEntry(context.Background(), "id-1", 1, entities.WorkEntry{Date: d(20), Hours: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

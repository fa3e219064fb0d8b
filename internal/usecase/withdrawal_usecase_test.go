package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"
	mock_interfaces "gestao_servicos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validWithdrawal() entities.Withdrawal {
	return entities.Withdrawal{
		Description:    "retirada mensal",
		Amount:         250.50,
		WithdrawalDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Category:       entities.WithdrawalCategoryPersonal,
		Method:         entities.WithdrawalMethodPix,
	}
}

func TestWithdrawalUseCase_Create(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*entities.Withdrawal)
		wantErr error
	}{
		{"blank description", func(w *entities.Withdrawal) { w.Description = "  " }, ErrInvalidWithdrawalDesc},
		{"zero amount", func(w *entities.Withdrawal) { w.Amount = 0 }, ErrInvalidWithdrawalAmount},
		{"negative amount", func(w *entities.Withdrawal) { w.Amount = -10 }, ErrInvalidWithdrawalAmount},
		{"sub cent amount", func(w *entities.Withdrawal) { w.Amount = 10.555 }, ErrWithdrawalAmountTooFine},
		{"missing date", func(w *entities.Withdrawal) { w.WithdrawalDate = time.Time{} }, ErrInvalidWithdrawalDate},
		{"unknown category", func(w *entities.Withdrawal) { w.Category = "luxo" }, ErrInvalidWithdrawalFields},
		{"unknown method", func(w *entities.Withdrawal) { w.Method = "cheque" }, ErrInvalidWithdrawalFields},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewWithdrawalUseCase(nil)
			w := validWithdrawal()
			tc.mutate(&w)
			_, err := uc.Create(context.Background(), w)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("success assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
				if !recordIDPattern.MatchString(w.ID) {
					t.Fatalf("unexpected id format: %q", w.ID)
				}
				if w.CreatedAt.IsZero() || w.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return w, nil
			},
		)

		if _, err := uc.Create(context.Background(), validWithdrawal()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retries on duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo)

		first := repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Withdrawal{}, interfaces.ErrDuplicateID)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
				if len(w.ID) == 14 {
					t.Fatalf("expected suffixed id, got %q", w.ID)
				}
				return w, nil
			},
		)

		if _, err := uc.Create(context.Background(), validWithdrawal()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWithdrawalUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "20240610120000").Return(entities.Withdrawal{}, nil)

		_, err := uc.Update(context.Background(), "20240610120000", validWithdrawal())
		if !errors.Is(err, ErrWithdrawalNotFound) {
			t.Fatalf("expected ErrWithdrawalNotFound, got %v", err)
		}
	})

	t.Run("preserves created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
		uc := NewWithdrawalUseCase(repo)

		created := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "20240105090000").Return(entities.Withdrawal{ID: "20240105090000", CreatedAt: created}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
				if !w.CreatedAt.Equal(created) {
					t.Fatalf("created at not preserved: %v", w.CreatedAt)
				}
				if w.ID != "20240105090000" {
					t.Fatalf("unexpected id: %q", w.ID)
				}
				return w, nil
			},
		)

		if _, err := uc.Update(context.Background(), "20240105090000", validWithdrawal()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWithdrawalUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWithdrawalRepository(ctrl)
	uc := NewWithdrawalUseCase(repo)

	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 2, 0, 0, 0, 0, time.UTC)
	lastYear := thisMonth.AddDate(-1, 0, 0)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Withdrawal{
		{ID: "a", Amount: 100, WithdrawalDate: lastYear},
		{ID: "b", Amount: 40.50, WithdrawalDate: thisMonth},
		{ID: "c", Amount: 9.50, WithdrawalDate: thisMonth},
	}, nil)

	page, monthTotal, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 || page.Shown != 3 {
		t.Fatalf("unexpected counts: %+v", page)
	}
	if page.Items[len(page.Items)-1].ID != "a" {
		t.Fatalf("expected oldest last, got %+v", page.Items)
	}
	if monthTotal != 50 {
		t.Fatalf("expected month total 50, got %v", monthTotal)
	}
}

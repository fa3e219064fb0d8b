package request

import (
	"errors"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
)

func TestLaunchRequest_ToEntity(t *testing.T) {
	t.Run("parses day strings", func(t *testing.T) {
		r := LaunchRequest{
			Customer:      "Maria",
			Deposit:       500,
			Status:        "2",
			Request:       "2024-01-15",
			ProcessedDate: "",
		}
		l, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !l.Request.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected request date: %v", l.Request)
		}
		if !l.ProcessedDate.IsZero() {
			t.Fatalf("expected zero processed date, got %v", l.ProcessedDate)
		}
		if l.Status != entities.LaunchStatusInProgress {
			t.Fatalf("unexpected status: %v", l.Status)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		r := LaunchRequest{Customer: "Maria", Deposit: 500, Delivery: "15/01/2024"}
		if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestInstallmentPlanRequest_ParseFirstDueDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := InstallmentPlanRequest{PaymentMethod: "pix", InstallmentCount: 3, FirstDueDate: "2024-01-15"}
		d, err := r.ParseFirstDueDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date: %v", d)
		}
	})

	t.Run("empty", func(t *testing.T) {
		r := InstallmentPlanRequest{PaymentMethod: "pix", InstallmentCount: 3}
		if _, err := r.ParseFirstDueDate(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestWorkEntryRequest_ToEntity(t *testing.T) {
	r := WorkEntryRequest{Date: "2024-05-10", Hours: 2.5, Description: "revisão"}
	e, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Hours != 2.5 || e.Description != "revisão" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestWithdrawalRequest_ToEntity(t *testing.T) {
	t.Run("known selectors pass through", func(t *testing.T) {
		r := WithdrawalRequest{
			Description:    "retirada",
			Amount:         100,
			WithdrawalDate: "2024-06-10",
			Category:       "company",
			Method:         "transfer",
		}
		w, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Category != entities.WithdrawalCategoryCompany || w.Method != entities.WithdrawalMethodTransfer {
			t.Fatalf("unexpected selectors: %+v", w)
		}
	})

	t.Run("blank selectors fall back to other", func(t *testing.T) {
		r := WithdrawalRequest{Description: "retirada", Amount: 100, WithdrawalDate: "2024-06-10"}
		w, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Category != entities.WithdrawalCategoryOther || w.Method != entities.WithdrawalMethodOther {
			t.Fatalf("expected other fallback, got %+v", w)
		}
	})

	t.Run("unknown selector is kept for the usecase to reject", func(t *testing.T) {
		r := WithdrawalRequest{Description: "retirada", Amount: 100, WithdrawalDate: "2024-06-10", Category: "luxo"}
		w, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Category != entities.WithdrawalCategory("luxo") {
			t.Fatalf("unexpected category: %v", w.Category)
		}
	})
}

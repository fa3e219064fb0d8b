package response

import (
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
)

func TestFromLaunch(t *testing.T) {
	firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	l := entities.Launch{
		ID:       "20240115100000",
		Customer: "Maria",
		Status:   entities.LaunchStatusAwaiting,
		Reason:   "esperando aprovação",
		Deposit:  300,
		Request:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Plan: &entities.InstallmentPlan{
			PaymentMethod:    entities.PaymentMethodCardWithInterest,
			InstallmentCount: 3,
			FirstDueDate:     firstDue,
			Installments: []entities.Installment{
				{Number: 1, DueDate: firstDue, BaseValue: 100, Interest: 0, FinalValue: 100, Status: entities.InstallmentStatusPending},
				{Number: 2, DueDate: firstDue.AddDate(0, 1, 0), BaseValue: 100, Interest: 2, FinalValue: 102, Status: entities.InstallmentStatusPending},
				{Number: 3, DueDate: firstDue.AddDate(0, 2, 0), BaseValue: 100, Interest: 4.04, FinalValue: 104.04, Status: entities.InstallmentStatusPending},
			},
		},
	}

	resp := FromLaunch(l)
	if resp.StatusLabel != "Aguardando" {
		t.Fatalf("unexpected label: %q", resp.StatusLabel)
	}
	if resp.Request != "2024-01-10" {
		t.Fatalf("unexpected request string: %q", resp.Request)
	}
	if resp.ProcessedDate != "" {
		t.Fatalf("expected empty processed date, got %q", resp.ProcessedDate)
	}
	if resp.Plan == nil {
		t.Fatalf("expected plan in response")
	}
	if resp.Plan.TotalFinal != 306.04 || resp.Plan.TotalInterest != 6.04 {
		t.Fatalf("unexpected plan totals: %+v", resp.Plan)
	}
	if resp.Plan.DifferenceFromDeposit != 0 {
		t.Fatalf("unexpected difference: %v", resp.Plan.DifferenceFromDeposit)
	}
	if resp.Plan.Installments[1].DueDate != "2024-02-15" {
		t.Fatalf("unexpected due date: %q", resp.Plan.Installments[1].DueDate)
	}
}

func TestFromLaunchPage(t *testing.T) {
	page := listing.LaunchPage{
		Items: []entities.Launch{{ID: "a"}, {ID: "b"}},
		Shown: 2,
		Total: 14,
	}
	resp := FromLaunchPage(page)
	if len(resp.Items) != 2 || resp.Shown != 2 || resp.Total != 14 {
		t.Fatalf("unexpected list response: %+v", resp)
	}
}

func TestFromWithdrawalPage(t *testing.T) {
	page := listing.WithdrawalPage{
		Items: []entities.Withdrawal{{
			ID:             "w1",
			Description:    "retirada",
			Amount:         100,
			WithdrawalDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Category:       entities.WithdrawalCategoryPersonal,
			Method:         entities.WithdrawalMethodPix,
		}},
		Shown: 1,
		Total: 1,
	}
	resp := FromWithdrawalPage(page, 250.50)
	if resp.MonthTotal != 250.50 {
		t.Fatalf("unexpected month total: %v", resp.MonthTotal)
	}
	if resp.Items[0].CategoryLabel == "" || resp.Items[0].MethodLabel == "" {
		t.Fatalf("expected labels, got %+v", resp.Items[0])
	}
	if resp.Items[0].WithdrawalDate != "2024-06-10" {
		t.Fatalf("unexpected date string: %q", resp.Items[0].WithdrawalDate)
	}
}

// Package calc holds the pure derived-field arithmetic of the launch screen:
// the expense percentage/amount pair, profit and net profit, and installment
// schedules. Nothing here touches storage or HTTP; callers decide what to do
// with the results.
package calc

import (
	"math"
	"time"

	"gestao_servicos/internal/domain/entities"
)

// cardInterestRate is the per-installment compounding rate applied when the
// payment method is card-with-interest.
const cardInterestRate = 0.02

// RoundCents rounds to the nearest cent.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CeilCents rounds up to the next cent.
func CeilCents(v float64) float64 {
	return math.Ceil(v*100) / 100
}

// ExpensePercentage derives the expense percentage from an edited expense
// amount. Zero deposit yields zero rather than dividing.
func ExpensePercentage(deposit, expenses float64) float64 {
	if deposit <= 0 {
		return 0
	}
	return RoundCents(expenses / deposit * 100)
}

// ExpensesFromPercentage derives the expense amount from an edited percentage.
//
// This direction intentionally rounds UP to the cent while the reverse
// direction rounds to nearest; the asymmetry is an inherited product policy
// and must not be "fixed" here.
func ExpensesFromPercentage(deposit, percentage float64) float64 {
	return CeilCents(deposit * percentage / 100)
}

// Profit is deposit minus expenses, at cent precision.
func Profit(deposit, expenses float64) float64 {
	return RoundCents(deposit - expenses)
}

// NetProfit is profit minus discount. The boolean marks a negative result for
// presentation emphasis; the numeric value is unchanged by the flag.
func NetProfit(profit, discount float64) (float64, bool) {
	net := RoundCents(profit - discount)
	return net, net < 0
}

// BuildInstallments splits a deposit into count equal monthly installments
// starting at firstDue. Due dates use calendar month addition, so a first due
// date near month-end rolls the same way time.AddDate does.
//
// For card-with-interest, installment i pays base × 1.02^(i-1) rounded to the
// cent, with interest as the rounded difference. count <= 1 means no plan and
// returns nil.
func BuildInstallments(deposit float64, count int, method entities.PaymentMethod, firstDue time.Time) []entities.Installment {
	if count <= 1 {
		return nil
	}

	base := RoundCents(deposit / float64(count))
	out := make([]entities.Installment, 0, count)
	for i := 1; i <= count; i++ {
		final := base
		if method == entities.PaymentMethodCardWithInterest {
			final = RoundCents(base * math.Pow(1+cardInterestRate, float64(i-1)))
		}
		out = append(out, entities.Installment{
			Number:     i,
			DueDate:    firstDue.AddDate(0, i-1, 0),
			BaseValue:  base,
			Interest:   RoundCents(final - base),
			FinalValue: final,
			Status:     entities.InstallmentStatusPending,
		})
	}
	return out
}

// InstallmentTotals summarizes a schedule. DifferenceFromDeposit is an
// advisory reconciliation signal (total base minus deposit) and never blocks
// a save. Totals always come from the rows as they stand, so a manual
// base-value override flows into them instead of being re-derived from the
// deposit.
type InstallmentTotals struct {
	TotalBase             float64
	TotalInterest         float64
	TotalFinal            float64
	DifferenceFromDeposit float64
}

func ComputeInstallmentTotals(installments []entities.Installment, deposit float64) InstallmentTotals {
	var t InstallmentTotals
	for _, it := range installments {
		t.TotalBase += it.BaseValue
		t.TotalInterest += it.Interest
		t.TotalFinal += it.FinalValue
	}
	t.TotalBase = RoundCents(t.TotalBase)
	t.TotalInterest = RoundCents(t.TotalInterest)
	t.TotalFinal = RoundCents(t.TotalFinal)
	t.DifferenceFromDeposit = RoundCents(t.TotalBase - deposit)
	return t
}

// OverrideBaseValue replaces the computed base value of one installment with
// an operator-edited value and recomputes that row's interest and final value
// under the plan's method. The other rows are untouched. Returns false when
// no installment carries the given number.
func OverrideBaseValue(plan *entities.InstallmentPlan, number int, value float64) bool {
	for i := range plan.Installments {
		if plan.Installments[i].Number != number {
			continue
		}
		base := RoundCents(value)
		final := base
		if plan.PaymentMethod == entities.PaymentMethodCardWithInterest {
			final = RoundCents(base * math.Pow(1+cardInterestRate, float64(number-1)))
		}
		plan.Installments[i].BaseValue = base
		plan.Installments[i].Interest = RoundCents(final - base)
		plan.Installments[i].FinalValue = final
		return true
	}
	return false
}

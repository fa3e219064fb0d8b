package listing

import (
	"time"

	"gestao_servicos/internal/domain/calc"
	"gestao_servicos/internal/domain/entities"
)

// StatusCounts breaks down launches by lifecycle. The counting windows are
// deliberately asymmetric: in-flight work (in progress, awaiting) is always
// visible regardless of date, while resolved work (completed, canceled) is
// scoped to the reporting period by its request date.
type StatusCounts struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Awaiting   int `json:"awaiting"`
	Canceled   int `json:"canceled"`
}

// WithdrawalBreakdown accumulates period withdrawals by category and method.
// Stored values outside the known enums land in the Other buckets.
type WithdrawalBreakdown struct {
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Personal   float64 `json:"personal"`
	Company    float64 `json:"company"`
	Investment float64 `json:"investment"`
	OtherCat   float64 `json:"other_category"`
	Pix        float64 `json:"pix"`
	Transfer   float64 `json:"transfer"`
	Cash       float64 `json:"cash"`
	Card       float64 `json:"card"`
	OtherMet   float64 `json:"other_method"`
}

// Summary is the financial aggregation of a reporting period.
type Summary struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	TotalDeposit   float64 `json:"total_deposit"`
	TotalExpenses  float64 `json:"total_expenses"`
	TotalProfit    float64 `json:"total_profit"`
	TotalDiscount  float64 `json:"total_discount"`
	TotalNetProfit float64 `json:"total_net_profit"`
	ValidItems     int     `json:"valid_items"`

	ExpensesPercentage float64 `json:"expenses_percentage"`
	ProfitMargin       float64 `json:"profit_margin"`
	DiscountPercentage float64 `json:"discount_percentage"`
	NetProfitMargin    float64 `json:"net_profit_margin"`

	StatusCounts StatusCounts        `json:"status_counts"`
	Withdrawals  WithdrawalBreakdown `json:"withdrawals"`

	FinalBalance      float64 `json:"final_balance"`
	BalancePercentage float64 `json:"balance_percentage"`
}

// EndOfDay extends a date to 23:59:59.999 so an inclusive end bound covers the
// whole selected day.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), d.Location())
}

// CurrentMonth returns the first and last day of ref's month, the end already
// extended to end-of-day.
func CurrentMonth(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, -1)
	return start, EndOfDay(end)
}

// PreviousMonth returns the bounds of the month before ref's.
func PreviousMonth(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -1, 0)
	end := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 0, -1)
	return start, EndOfDay(end)
}

func inPeriod(d, start, end time.Time) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// Summarize aggregates launches and withdrawals over [start, end].
//
// Financial totals only count launches whose processed date falls in the
// period; profit and net profit are recomputed from deposit, expenses and
// discount rather than trusting the stored derived fields. Launches missing
// the date a given rule needs are excluded from that rule, never coerced to
// an epoch or to today.
func Summarize(launches []entities.Launch, withdrawals []entities.Withdrawal, start, end time.Time) Summary {
	end = EndOfDay(end)
	s := Summary{Start: start, End: end}

	for _, l := range launches {
		if inPeriod(l.ProcessedDate, start, end) {
			profit := calc.Profit(l.Deposit, l.Expenses)
			net, _ := calc.NetProfit(profit, l.Discount)

			s.TotalDeposit += l.Deposit
			s.TotalExpenses += l.Expenses
			s.TotalProfit += profit
			s.TotalDiscount += l.Discount
			s.TotalNetProfit += net
			s.ValidItems++
		}

		switch l.Status {
		case entities.LaunchStatusInProgress:
			s.StatusCounts.InProgress++
		case entities.LaunchStatusAwaiting:
			s.StatusCounts.Awaiting++
		case entities.LaunchStatusCompleted:
			if inPeriod(l.Request, start, end) {
				s.StatusCounts.Completed++
			}
		case entities.LaunchStatusCanceled:
			if inPeriod(l.Request, start, end) {
				s.StatusCounts.Canceled++
			}
		}
	}

	for _, w := range withdrawals {
		if !inPeriod(w.WithdrawalDate, start, end) {
			continue
		}
		s.Withdrawals.Total += w.Amount
		s.Withdrawals.Count++

		switch w.Category {
		case entities.WithdrawalCategoryPersonal:
			s.Withdrawals.Personal += w.Amount
		case entities.WithdrawalCategoryCompany:
			s.Withdrawals.Company += w.Amount
		case entities.WithdrawalCategoryInvestment:
			s.Withdrawals.Investment += w.Amount
		default:
			s.Withdrawals.OtherCat += w.Amount
		}

		switch w.Method {
		case entities.WithdrawalMethodPix:
			s.Withdrawals.Pix += w.Amount
		case entities.WithdrawalMethodTransfer:
			s.Withdrawals.Transfer += w.Amount
		case entities.WithdrawalMethodCash:
			s.Withdrawals.Cash += w.Amount
		case entities.WithdrawalMethodCard:
			s.Withdrawals.Card += w.Amount
		default:
			s.Withdrawals.OtherMet += w.Amount
		}
	}

	if s.TotalDeposit > 0 {
		s.ExpensesPercentage = calc.RoundCents(s.TotalExpenses / s.TotalDeposit * 100)
		s.ProfitMargin = calc.RoundCents(s.TotalProfit / s.TotalDeposit * 100)
		s.NetProfitMargin = calc.RoundCents(s.TotalNetProfit / s.TotalDeposit * 100)
	}
	if s.TotalProfit > 0 {
		s.DiscountPercentage = calc.RoundCents(s.TotalDiscount / s.TotalProfit * 100)
	}

	s.FinalBalance = calc.RoundCents(s.TotalNetProfit - s.Withdrawals.Total)
	if s.TotalNetProfit > 0 {
		s.BalancePercentage = calc.RoundCents(s.Withdrawals.Total / s.TotalNetProfit * 100)
	}
	return s
}

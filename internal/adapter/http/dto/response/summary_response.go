package response

import (
	"gestao_servicos/internal/domain/listing"
)

type StatusCountsResponse struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Awaiting   int `json:"awaiting"`
	Canceled   int `json:"canceled"`
}

type WithdrawalBreakdownResponse struct {
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

type SummaryResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`

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

	StatusCounts StatusCountsResponse        `json:"status_counts"`
	Withdrawals  WithdrawalBreakdownResponse `json:"withdrawals"`

	FinalBalance      float64 `json:"final_balance"`
	BalancePercentage float64 `json:"balance_percentage"`
}

func FromSummary(s listing.Summary) SummaryResponse {
	return SummaryResponse{
		Start:              dayString(s.Start),
		End:                dayString(s.End),
		TotalDeposit:       s.TotalDeposit,
		TotalExpenses:      s.TotalExpenses,
		TotalProfit:        s.TotalProfit,
		TotalDiscount:      s.TotalDiscount,
		TotalNetProfit:     s.TotalNetProfit,
		ValidItems:         s.ValidItems,
		ExpensesPercentage: s.ExpensesPercentage,
		ProfitMargin:       s.ProfitMargin,
		DiscountPercentage: s.DiscountPercentage,
		NetProfitMargin:    s.NetProfitMargin,
		StatusCounts: StatusCountsResponse{
			Completed:  s.StatusCounts.Completed,
			InProgress: s.StatusCounts.InProgress,
			Awaiting:   s.StatusCounts.Awaiting,
			Canceled:   s.StatusCounts.Canceled,
		},
		Withdrawals: WithdrawalBreakdownResponse{
			Total:      s.Withdrawals.Total,
			Count:      s.Withdrawals.Count,
			Personal:   s.Withdrawals.Personal,
			Company:    s.Withdrawals.Company,
			Investment: s.Withdrawals.Investment,
			OtherCat:   s.Withdrawals.OtherCat,
			Pix:        s.Withdrawals.Pix,
			Transfer:   s.Withdrawals.Transfer,
			Cash:       s.Withdrawals.Cash,
			Card:       s.Withdrawals.Card,
			OtherMet:   s.Withdrawals.OtherMet,
		},
		FinalBalance:      s.FinalBalance,
		BalancePercentage: s.BalancePercentage,
	}
}

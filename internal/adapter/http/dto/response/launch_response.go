package response

import (
	"time"

	"gestao_servicos/internal/domain/calc"
	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
)

const dayLayout = "2006-01-02"

type WorkEntryResponse struct {
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description,omitempty"`
}

type InstallmentResponse struct {
	Number     int     `json:"number"`
	DueDate    string  `json:"due_date"`
	BaseValue  float64 `json:"base_value"`
	Interest   float64 `json:"interest"`
	FinalValue float64 `json:"final_value"`
	Status     string  `json:"status"`
}

type InstallmentPlanResponse struct {
	PaymentMethod         string                `json:"payment_method"`
	InstallmentCount      int                   `json:"installment_count"`
	FirstDueDate          string                `json:"first_due_date"`
	Installments          []InstallmentResponse `json:"installments"`
	TotalBase             float64               `json:"total_base"`
	TotalInterest         float64               `json:"total_interest"`
	TotalFinal            float64               `json:"total_final"`
	DifferenceFromDeposit float64               `json:"difference_from_deposit"`
}

type LaunchResponse struct {
	ID            string                   `json:"id"`
	Customer      string                   `json:"customer"`
	Business      string                   `json:"business,omitempty"`
	Description   string                   `json:"description,omitempty"`
	Status        string                   `json:"status"`
	StatusLabel   string                   `json:"status_label"`
	Reason        string                   `json:"reason,omitempty"`
	Deposit       float64                  `json:"deposit"`
	Expenses      float64                  `json:"expenses"`
	PercExpenses  float64                  `json:"perc_expenses"`
	Profit        float64                  `json:"profit"`
	Discount      float64                  `json:"discount"`
	NetProfit     float64                  `json:"net_profit"`
	Request       string                   `json:"request"`
	Delivery      string                   `json:"delivery"`
	ProcessedDate string                   `json:"processed_date"`
	Plan          *InstallmentPlanResponse `json:"installment_plan,omitempty"`
	WorkHistory   []WorkEntryResponse      `json:"work_history,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

type LaunchListResponse struct {
	Items []LaunchResponse `json:"items"`
	Shown int              `json:"shown"`
	Total int              `json:"total"`
}

func FromLaunch(l entities.Launch) LaunchResponse {
	return LaunchResponse{
		ID:            l.ID,
		Customer:      l.Customer,
		Business:      l.Business,
		Description:   l.Description,
		Status:        string(l.Status),
		StatusLabel:   l.Status.Label(),
		Reason:        l.Reason,
		Deposit:       l.Deposit,
		Expenses:      l.Expenses,
		PercExpenses:  l.PercExpenses,
		Profit:        l.Profit,
		Discount:      l.Discount,
		NetProfit:     l.NetProfit,
		Request:       dayString(l.Request),
		Delivery:      dayString(l.Delivery),
		ProcessedDate: dayString(l.ProcessedDate),
		Plan:          fromPlan(l.Plan, l.Deposit),
		WorkHistory:   fromWorkHistory(l.WorkHistory),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func FromLaunchPage(page listing.LaunchPage) LaunchListResponse {
	items := make([]LaunchResponse, 0, len(page.Items))
	for _, l := range page.Items {
		items = append(items, FromLaunch(l))
	}
	return LaunchListResponse{
		Items: items,
		Shown: page.Shown,
		Total: page.Total,
	}
}

func fromPlan(p *entities.InstallmentPlan, deposit float64) *InstallmentPlanResponse {
	if p == nil {
		return nil
	}
	installments := make([]InstallmentResponse, 0, len(p.Installments))
	for _, ins := range p.Installments {
		installments = append(installments, InstallmentResponse{
			Number:     ins.Number,
			DueDate:    dayString(ins.DueDate),
			BaseValue:  ins.BaseValue,
			Interest:   ins.Interest,
			FinalValue: ins.FinalValue,
			Status:     string(ins.Status),
		})
	}
	totals := calc.ComputeInstallmentTotals(p.Installments, deposit)
	return &InstallmentPlanResponse{
		PaymentMethod:         string(p.PaymentMethod),
		InstallmentCount:      p.InstallmentCount,
		FirstDueDate:          dayString(p.FirstDueDate),
		Installments:          installments,
		TotalBase:             totals.TotalBase,
		TotalInterest:         totals.TotalInterest,
		TotalFinal:            totals.TotalFinal,
		DifferenceFromDeposit: totals.DifferenceFromDeposit,
	}
}

func fromWorkHistory(entries []entities.WorkEntry) []WorkEntryResponse {
	if len(entries) == 0 {
		return nil
	}
	out := make([]WorkEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, WorkEntryResponse{
			Date:        dayString(e.Date),
			Hours:       e.Hours,
			Description: e.Description,
		})
	}
	return out
}

func dayString(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dayLayout)
}

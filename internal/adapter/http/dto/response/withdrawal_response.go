package response

import (
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
)

type WithdrawalResponse struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount"`
	WithdrawalDate string    `json:"withdrawal_date"`
	Category       string    `json:"category"`
	CategoryLabel  string    `json:"category_label"`
	Method         string    `json:"method"`
	MethodLabel    string    `json:"method_label"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WithdrawalListResponse struct {
	Items      []WithdrawalResponse `json:"items"`
	Shown      int                  `json:"shown"`
	Total      int                  `json:"total"`
	MonthTotal float64              `json:"month_total"`
}

func FromWithdrawal(w entities.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:             w.ID,
		Description:    w.Description,
		Amount:         w.Amount,
		WithdrawalDate: dayString(w.WithdrawalDate),
		Category:       string(w.Category),
		CategoryLabel:  w.Category.Label(),
		Method:         string(w.Method),
		MethodLabel:    w.Method.Label(),
		Notes:          w.Notes,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func FromWithdrawalPage(page listing.WithdrawalPage, monthTotal float64) WithdrawalListResponse {
	items := make([]WithdrawalResponse, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, FromWithdrawal(w))
	}
	return WithdrawalListResponse{
		Items:      items,
		Shown:      page.Shown,
		Total:      page.Total,
		MonthTotal: monthTotal,
	}
}

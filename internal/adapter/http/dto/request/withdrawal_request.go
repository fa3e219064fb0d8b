package request

import (
	"gestao_servicos/internal/domain/entities"
)

// WithdrawalRequest is the cash withdrawal form payload.
type WithdrawalRequest struct {
	Description    string  `json:"description" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	WithdrawalDate string  `json:"withdrawal_date" binding:"required"`
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Notes          string  `json:"notes"`
}

func (r WithdrawalRequest) ToEntity() (entities.Withdrawal, error) {
	d, err := parseDay(r.WithdrawalDate)
	if err != nil {
		return entities.Withdrawal{}, err
	}

	// Blank selectors fall back to the catch-all buckets.
	category := entities.WithdrawalCategory(r.Category)
	if r.Category == "" {
		category = entities.WithdrawalCategoryOther
	}
	method := entities.WithdrawalMethod(r.Method)
	if r.Method == "" {
		method = entities.WithdrawalMethodOther
	}

	return entities.Withdrawal{
		Description:    r.Description,
		Amount:         r.Amount,
		WithdrawalDate: d,
		Category:       category,
		Method:         method,
		Notes:          r.Notes,
	}, nil
}

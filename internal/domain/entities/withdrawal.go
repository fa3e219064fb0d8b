package entities

import "time"

// WithdrawalCategory classifies where a cash withdrawal went. Unrecognized
// stored values fall into the "other" bucket at aggregation time.

type WithdrawalCategory string

const (
	WithdrawalCategoryPersonal   WithdrawalCategory = "personal"
	WithdrawalCategoryCompany    WithdrawalCategory = "company"
	WithdrawalCategoryInvestment WithdrawalCategory = "investment"
	WithdrawalCategoryOther      WithdrawalCategory = "other"
)

func (c WithdrawalCategory) Valid() bool {
	switch c {
	case WithdrawalCategoryPersonal, WithdrawalCategoryCompany, WithdrawalCategoryInvestment, WithdrawalCategoryOther:
		return true
	}
	return false
}

func (c WithdrawalCategory) Label() string {
	switch c {
	case WithdrawalCategoryPersonal:
		return "Pessoal"
	case WithdrawalCategoryCompany:
		return "Empresa"
	case WithdrawalCategoryInvestment:
		return "Investimento"
	case WithdrawalCategoryOther:
		return "Outros"
	}
	return string(c)
}

type WithdrawalMethod string

const (
	WithdrawalMethodPix      WithdrawalMethod = "pix"
	WithdrawalMethodTransfer WithdrawalMethod = "transfer"
	WithdrawalMethodCash     WithdrawalMethod = "cash"
	WithdrawalMethodCard     WithdrawalMethod = "card"
	WithdrawalMethodOther    WithdrawalMethod = "other"
)

func (m WithdrawalMethod) Valid() bool {
	switch m {
	case WithdrawalMethodPix, WithdrawalMethodTransfer, WithdrawalMethodCash, WithdrawalMethodCard, WithdrawalMethodOther:
		return true
	}
	return false
}

func (m WithdrawalMethod) Label() string {
	switch m {
	case WithdrawalMethodPix:
		return "PIX"
	case WithdrawalMethodTransfer:
		return "Transferência"
	case WithdrawalMethodCash:
		return "Dinheiro"
	case WithdrawalMethodCard:
		return "Cartão"
	case WithdrawalMethodOther:
		return "Outro"
	}
	return string(m)
}

// Withdrawal is a recorded cash outflow unrelated to a specific launch.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Amount carries at most two decimal places; the use case rejects finer
// precision before any remote call.

type Withdrawal struct {
	ID             string             `json:"id"`
	Description    string             `json:"description"`
	Amount         float64            `json:"amount"`
	WithdrawalDate time.Time          `json:"withdrawal_date"`
	Category       WithdrawalCategory `json:"category"`
	Method         WithdrawalMethod   `json:"method"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

package entities

import "time"

// LaunchStatus is the lifecycle code of a service launch (lançamento).
//
// The numeric string codes are the storage contract inherited from the
// operator's historical data; they must not be renumbered.

type LaunchStatus string

const (
	LaunchStatusCompleted  LaunchStatus = "1"
	LaunchStatusInProgress LaunchStatus = "2"
	LaunchStatusAwaiting   LaunchStatus = "3"
	LaunchStatusCanceled   LaunchStatus = "4"
)

// Valid reports whether the code is one of the four known statuses.
func (s LaunchStatus) Valid() bool {
	switch s {
	case LaunchStatusCompleted, LaunchStatusInProgress, LaunchStatusAwaiting, LaunchStatusCanceled:
		return true
	}
	return false
}

// Label returns the operator-facing pt-BR label for the status code.
func (s LaunchStatus) Label() string {
	switch s {
	case LaunchStatusCompleted:
		return "Concluído"
	case LaunchStatusInProgress:
		return "Em andamento"
	case LaunchStatusAwaiting:
		return "Aguardando"
	case LaunchStatusCanceled:
		return "Cancelado"
	}
	return "Desconhecido"
}

// Launch is a recorded service job with its financial and scheduling fields,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (string, wall-clock derived, see usecase identifier rules)
//
// Derived fields (Profit, NetProfit, PercExpenses) are recomputed by the use
// case on every write; stored values are trusted on read so legacy records
// with hand-adjusted numbers keep them until the next edit.
//
// Invariant: Reason is present if and only if Status is LaunchStatusAwaiting.
// A zero date means the field was never filled by the operator.

type Launch struct {
	ID            string           `json:"id"`
	Customer      string           `json:"customer"`
	Business      string           `json:"business"`
	Description   string           `json:"description"`
	Status        LaunchStatus     `json:"status"`
	Reason        string           `json:"reason,omitempty"`
	Deposit       float64          `json:"deposit"`
	Expenses      float64          `json:"expenses"`
	PercExpenses  float64          `json:"perc_expenses"`
	Profit        float64          `json:"profit"`
	Discount      float64          `json:"discount"`
	NetProfit     float64          `json:"net_profit"`
	Request       time.Time        `json:"request,omitempty"`
	Delivery      time.Time        `json:"delivery,omitempty"`
	ProcessedDate time.Time        `json:"processed_date,omitempty"`
	Plan          *InstallmentPlan `json:"installment_plan,omitempty"`
	WorkHistory   []WorkEntry      `json:"work_history,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// WorkEntry is a logged unit of labor attached to a launch. The owning launch
// keeps the list ordered by date descending after every mutation.

type WorkEntry struct {
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

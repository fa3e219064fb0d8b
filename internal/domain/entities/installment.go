package entities

import "time"

// PaymentMethod selects how a launch deposit is split into installments.
//
// card-with-interest compounds 2% per installment starting from the first
// (installment i pays base × 1.02^(i-1)); the other methods carry no interest.

type PaymentMethod string

const (
	PaymentMethodPix              PaymentMethod = "pix"
	PaymentMethodCardNoInterest   PaymentMethod = "card-no-interest"
	PaymentMethodCardWithInterest PaymentMethod = "card-with-interest"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCardNoInterest, PaymentMethodCardWithInterest:
		return true
	}
	return false
}

type InstallmentStatus string

const (
	InstallmentStatusPending  InstallmentStatus = "pending"
	InstallmentStatusPaid     InstallmentStatus = "paid"
	InstallmentStatusOverdue  InstallmentStatus = "overdue"
	InstallmentStatusCanceled InstallmentStatus = "canceled"
)

// Installment is one dated partial payment of a plan.

type Installment struct {
	Number     int               `json:"number"`
	DueDate    time.Time         `json:"due_date"`
	BaseValue  float64           `json:"base_value"`
	Interest   float64           `json:"interest"`
	FinalValue float64           `json:"final_value"`
	Status     InstallmentStatus `json:"status"`
}

// InstallmentPlan is an optional payment schedule attached to a launch.
//
// The sum of base values should approximate the launch deposit; the engine
// surfaces the difference as an advisory signal and never blocks on it.

type InstallmentPlan struct {
	PaymentMethod    PaymentMethod `json:"payment_method"`
	InstallmentCount int           `json:"installment_count"`
	FirstDueDate     time.Time     `json:"first_due_date"`
	Installments     []Installment `json:"installments"`
}

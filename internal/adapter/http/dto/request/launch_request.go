package request

import (
	"errors"
	"time"

	"gestao_servicos/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const dayLayout = "2006-01-02"

// LaunchRequest is the launch form payload. The dates come as plain day
// strings; an empty string means the operator left the field blank.
type LaunchRequest struct {
	Customer      string  `json:"customer" binding:"required"`
	Business      string  `json:"business"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason"`
	Deposit       float64 `json:"deposit" binding:"required"`
	Expenses      float64 `json:"expenses"`
	Discount      float64 `json:"discount"`
	Request       string  `json:"request"`
	Delivery      string  `json:"delivery"`
	ProcessedDate string  `json:"processed_date"`
}

func (r LaunchRequest) ToEntity() (entities.Launch, error) {
	req, err := parseDay(r.Request)
	if err != nil {
		return entities.Launch{}, err
	}
	delivery, err := parseDay(r.Delivery)
	if err != nil {
		return entities.Launch{}, err
	}
	processed, err := parseDay(r.ProcessedDate)
	if err != nil {
		return entities.Launch{}, err
	}

	return entities.Launch{
		Customer:      r.Customer,
		Business:      r.Business,
		Description:   r.Description,
		Status:        entities.LaunchStatus(r.Status),
		Reason:        r.Reason,
		Deposit:       r.Deposit,
		Expenses:      r.Expenses,
		Discount:      r.Discount,
		Request:       req,
		Delivery:      delivery,
		ProcessedDate: processed,
	}, nil
}

// InstallmentPlanRequest asks for the deposit to be split into installments.
type InstallmentPlanRequest struct {
	PaymentMethod    string `json:"payment_method" binding:"required"`
	InstallmentCount int    `json:"installment_count" binding:"required"`
	FirstDueDate     string `json:"first_due_date" binding:"required"`
}

func (r InstallmentPlanRequest) ParseFirstDueDate() (time.Time, error) {
	d, err := parseDay(r.FirstDueDate)
	if err != nil {
		return time.Time{}, err
	}
	if d.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// InstallmentOverrideRequest replaces one installment's base value by hand.
type InstallmentOverrideRequest struct {
	Number    int     `json:"number" binding:"required"`
	BaseValue float64 `json:"base_value" binding:"required"`
}

// WorkEntryRequest is one logged unit of labor.
type WorkEntryRequest struct {
	Date        string  `json:"date" binding:"required"`
	Hours       float64 `json:"hours" binding:"required"`
	Description string  `json:"description"`
}

func (r WorkEntryRequest) ToEntity() (entities.WorkEntry, error) {
	d, err := parseDay(r.Date)
	if err != nil {
		return entities.WorkEntry{}, err
	}
	return entities.WorkEntry{
		Date:        d,
		Hours:       r.Hours,
		Description: r.Description,
	}, nil
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gestao_servicos/internal/usecase/interfaces"
)

var (
	ErrInvalidChargePayload = errors.New("invalid charge payload")
	ErrLaunchNotChargeable  = errors.New("launch has no deposit to charge")
	ErrChargeGatewayMissing = errors.New("payment gateway not configured")
)

// ChargeResult is what the provider reported for a deposit charge.
type ChargeResult struct {
	PaymentID string
	Status    string
	Raw       json.RawMessage
}

// IChargeUseCase collects a launch deposit through the payment provider.
//
// On an approved charge the launch's processed date is merged to today, the
// same mark the operator otherwise sets by hand when the money arrives.
type IChargeUseCase interface {
	ChargeDeposit(ctx context.Context, launchID string, payload json.RawMessage) (ChargeResult, error)
}

type ChargeUseCase struct {
	launches interfaces.ILaunchRepository
	gateway  interfaces.IPaymentGateway
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(launches interfaces.ILaunchRepository, gateway interfaces.IPaymentGateway) *ChargeUseCase {
	return &ChargeUseCase{launches: launches, gateway: gateway}
}

func (u *ChargeUseCase) ChargeDeposit(ctx context.Context, launchID string, payload json.RawMessage) (ChargeResult, error) {
	launchID = strings.TrimSpace(launchID)
	if launchID == "" {
		return ChargeResult{}, ErrInvalidLaunchID
	}
	if u.gateway == nil {
		log.Printf("[charge][usecase] gateway not configured launch_id=%s", launchID)
		return ChargeResult{}, ErrChargeGatewayMissing
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return ChargeResult{}, ErrInvalidChargePayload
	}

	l, err := u.launches.GetByID(ctx, launchID)
	if err != nil {
		log.Printf("[charge][usecase] failed loading launch launch_id=%s err=%v", launchID, err)
		return ChargeResult{}, err
	}
	if l.ID == "" {
		return ChargeResult{}, ErrLaunchNotFound
	}
	if l.Deposit <= 0 {
		return ChargeResult{}, ErrLaunchNotChargeable
	}

	// The source of truth for the amount is the stored launch, never the
	// caller payload. external_reference lets the provider events be
	// reconciled back to the launch.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return ChargeResult{}, ErrInvalidChargePayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = launchID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Lançamento %s", launchID)
	}
	reqMap["transaction_amount"] = l.Deposit
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	log.Printf("[charge][usecase] calling payment gateway launch_id=%s amount=%.2f", launchID, l.Deposit)
	paymentID, status, raw, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[charge][usecase] payment gateway failed launch_id=%s err=%v", launchID, err)
		return ChargeResult{}, err
	}
	log.Printf("[charge][usecase] gateway success launch_id=%s provider_payment_id=%s provider_status=%s", launchID, paymentID, status)

	if status == "approved" && l.ProcessedDate.IsZero() {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if _, err := u.launches.SetProcessedDate(ctx, launchID, today); err != nil {
			// The charge went through; a failed mark is logged and left for
			// the operator to set by hand.
			log.Printf("[charge][usecase] failed setting processed date launch_id=%s err=%v", launchID, err)
		}
	}

	return ChargeResult{PaymentID: paymentID, Status: status, Raw: raw}, nil
}

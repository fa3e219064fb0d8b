package response

import (
	"encoding/json"

	"gestao_servicos/internal/usecase"
)

type ChargeResponse struct {
	PaymentID string          `json:"payment_id"`
	Status    string          `json:"status"`
	Provider  json.RawMessage `json:"provider,omitempty"`
}

func FromChargeResult(r usecase.ChargeResult) ChargeResponse {
	return ChargeResponse{
		PaymentID: r.PaymentID,
		Status:    r.Status,
		Provider:  r.Raw,
	}
}

package request

import "encoding/json"

// ChargeRequest carries the provider payload for a deposit charge. The body
// is forwarded to the payment provider mostly as-is; the server only pins the
// amount and the reference fields.
type ChargeRequest struct {
	Payload json.RawMessage `json:"payload"`
}

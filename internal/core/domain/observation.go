package domain

// PaymentObservation is an ephemeral report of the gateway's view of a
// payment. It is produced by polling or by a webhook and consumed
// immediately to update the order; it is never persisted on its own.
type PaymentObservation struct {
	OrderNumber    OrderNumber
	PhonePeOrderID string
	State          string
	ErrorCode      string
}

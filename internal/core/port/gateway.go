package port

import (
	"context"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/govalues/decimal"
)

// PaymentSession is the gateway's acknowledgement of a created payment.
type PaymentSession struct {
	PhonePeOrderID string
	RedirectURL    string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type GatewayClient interface {
	CreatePayment(ctx context.Context, number domain.OrderNumber, amount decimal.Decimal) (*PaymentSession, error)
	OrderStatus(ctx context.Context, number domain.OrderNumber) (*domain.PaymentObservation, error)
}

type StatusPoller interface {
	SchedulePaymentCheck(number domain.OrderNumber)
}

// ObservationApplier is what the poller feeds observations into.
type ObservationApplier interface {
	Reconcile(ctx context.Context, obs domain.PaymentObservation) (domain.PaymentStatus, error)
}

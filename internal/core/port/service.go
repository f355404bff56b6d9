package port

import (
	"context"

	"github.com/aazhiproducts/checkout/internal/core/domain"
)

// CheckoutResult carries what the storefront needs to hand the customer
// over to the gateway's hosted checkout.
type CheckoutResult struct {
	Order          *domain.Order
	RedirectURL    string
	PhonePeOrderID string
}

// StatusResult is the status-check response: the persisted status plus the
// raw gateway state when the gateway was reachable.
type StatusResult struct {
	Status       domain.PaymentStatus
	GatewayState string
	Order        *domain.Order
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	Checkout(ctx context.Context, order *domain.Order) (*CheckoutResult, error)
	Reconcile(ctx context.Context, obs domain.PaymentObservation) (domain.PaymentStatus, error)
	CheckPaymentStatus(ctx context.Context, number domain.OrderNumber) (*StatusResult, error)

	AdminLogin(ctx context.Context, key string) (string, error)
	ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
}

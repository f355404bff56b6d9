package port

import (
	"context"

	"github.com/aazhiproducts/checkout/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// CreateOrder persists an order and its items in one transaction.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, statuses []domain.PaymentStatus) ([]*domain.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)

	SetGatewayReference(ctx context.Context, number domain.OrderNumber, phonepeOrderID string) error

	// TransitionPaymentStatus conditionally moves an order to the given
	// status. The write succeeds only while the stored status is
	// non-terminal and differs from the target; the returned bool reports
	// whether this caller won the transition. Losing is not an error.
	TransitionPaymentStatus(ctx context.Context, number domain.OrderNumber,
		to domain.PaymentStatus, phonepeOrderID string, errorCode string) (bool, error)
}

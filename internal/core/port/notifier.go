package port

import (
	"context"

	"github.com/aazhiproducts/checkout/internal/core/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	SendCustomerConfirmation(ctx context.Context, order *domain.Order) error
	SendAdminAlert(ctx context.Context, order *domain.Order) error
}

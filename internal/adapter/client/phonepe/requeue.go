package phonepe

import (
	"context"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
)

// RequeueOrders re-schedules every order still in a non-terminal status,
// so payments interrupted by a restart keep reconciling.
func RequeueOrders(ctx context.Context, repo port.Repository, poller port.StatusPoller) error {
	orders, err := repo.ListOrdersByStatus(ctx, []domain.PaymentStatus{
		domain.PaymentStatusInitiated, domain.PaymentStatusPending})
	if err != nil {
		return err
	}
	for _, order := range orders {
		poller.SchedulePaymentCheck(order.Number)
	}

	return nil
}

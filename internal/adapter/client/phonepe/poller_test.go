package phonepe_test

import (
	"context"
	"testing"
	"time"

	"github.com/aazhiproducts/checkout/internal/adapter/client/phonepe"
	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPollerReconcilesTerminalStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gateway := mock.NewMockGatewayClient(mockCtrl)
	applier := mock.NewMockObservationApplier(mockCtrl)

	obs := &domain.PaymentObservation{
		OrderNumber: "ORD-1001", PhonePeOrderID: "PP-1", State: "COMPLETED"}

	done := make(chan struct{})
	gateway.EXPECT().OrderStatus(gomock.Any(), domain.OrderNumber("ORD-1001")).Return(obs, nil)
	applier.EXPECT().Reconcile(gomock.Any(), *obs).
		DoAndReturn(func(context.Context, domain.PaymentObservation) (domain.PaymentStatus, error) {
			defer close(done)
			return domain.PaymentStatusSuccess, nil
		})

	logger, _ := zap.NewProduction()
	poller, err := phonepe.NewPoller(gateway, logger)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller.Run(ctx, applier, 1)
	poller.SchedulePaymentCheck("ORD-1001")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("terminal observation was not reconciled")
	}
}

func TestRequeueOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	poller := mock.NewMockStatusPoller(mockCtrl)

	repo.EXPECT().ListOrdersByStatus(gomock.Any(), []domain.PaymentStatus{
		domain.PaymentStatusInitiated, domain.PaymentStatusPending}).
		Return([]*domain.Order{
			{Number: "ORD-1001", PaymentStatus: domain.PaymentStatusInitiated},
			{Number: "ORD-1002", PaymentStatus: domain.PaymentStatusPending},
		}, nil)

	poller.EXPECT().SchedulePaymentCheck(domain.OrderNumber("ORD-1001"))
	poller.EXPECT().SchedulePaymentCheck(domain.OrderNumber("ORD-1002"))

	err := phonepe.RequeueOrders(context.Background(), repo, poller)
	assert.NoError(t, err)
}

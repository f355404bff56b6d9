package phonepe

import (
	"context"
	"time"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"go.uber.org/zap"
)

const (
	pollRetryInterval = 10 * time.Second
	pollErrorBackoff  = 30 * time.Second
)

// Poller drives payment-status reconciliation from our side: orders are fed
// into a queue and a pool of workers polls the gateway until the payment
// reaches a terminal status. Webhooks usually win the race; the poller is
// the safety net for lost or delayed deliveries.
type Poller struct {
	logger     *zap.Logger
	gateway    port.GatewayClient
	orderQueue chan domain.OrderNumber
}

func NewPoller(gateway port.GatewayClient, log *zap.Logger) (*Poller, error) {
	return &Poller{
		logger:     log,
		gateway:    gateway,
		orderQueue: make(chan domain.OrderNumber, 64),
	}, nil
}

func (p *Poller) SchedulePaymentCheck(number domain.OrderNumber) {
	p.orderQueue <- number
}

// Run starts the worker pool. Each reconciliation attempt is a one-shot
// request-response cycle; pending results are re-queued after a delay.
func (p *Poller) Run(ctx context.Context, applier port.ObservationApplier, workers int) {
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case number := <-p.orderQueue:
					p.pollOnce(ctx, applier, number)
				case <-ctx.Done():
					p.logger.Debug("Finished worker")
					return
				}
			}
		}()
	}
}

func (p *Poller) pollOnce(ctx context.Context, applier port.ObservationApplier, number domain.OrderNumber) {
	p.logger.Debug("Start payment status poll", zap.String("order", string(number)))

	obs, err := p.gateway.OrderStatus(ctx, number)
	if err != nil {
		p.logger.Error("Status request failed, will retry",
			zap.String("order", string(number)), zap.Error(err))
		go p.requeueAfter(ctx, number, pollErrorBackoff)
		return
	}

	status, err := applier.Reconcile(ctx, *obs)
	if err != nil {
		p.logger.Error("Reconcile error", zap.String("order", string(number)), zap.Error(err))
		return
	}

	if !status.Terminal() {
		go p.requeueAfter(ctx, number, pollRetryInterval)
		return
	}

	p.logger.Debug("Finished payment status poll",
		zap.String("order", string(number)), zap.String("status", string(status)))
}

func (p *Poller) requeueAfter(ctx context.Context, number domain.OrderNumber, waitFor time.Duration) {
	t := time.NewTimer(waitFor)
	defer t.Stop()

	select {
	case <-t.C:
		select {
		case p.orderQueue <- number:
		case <-ctx.Done():
		}
	case <-ctx.Done():
	}
}

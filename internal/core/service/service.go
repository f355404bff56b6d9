package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultListLimit = 50

type Service struct {
	repo         port.Repository
	gateway      port.GatewayClient
	poller       port.StatusPoller
	notifier     port.Notifier
	tokenService port.TokenService
	adminKey     string
	logger       *zap.Logger
}

func NewService(repo port.Repository, gateway port.GatewayClient, poller port.StatusPoller,
	notifier port.Notifier, tokenService port.TokenService, adminKey string,
	logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		gateway:      gateway,
		poller:       poller,
		notifier:     notifier,
		tokenService: tokenService,
		adminKey:     adminKey,
		logger:       logger,
	}, nil
}

// Checkout persists a new order, opens a payment session with the gateway
// and schedules the order for status polling. The order total is always
// computed server-side: subtotal of the line items plus the regional
// delivery charge.
func (s *Service) Checkout(ctx context.Context, order *domain.Order) (*port.CheckoutResult, error) {
	if len(order.Items) == 0 {
		return nil, domain.ErrOrderNoItems
	}

	if order.Number == "" {
		order.Number = domain.OrderNumber("ORD-" + uuid.NewString())
	}

	subtotal, err := order.Subtotal()
	if err != nil {
		s.logger.Error("Subtotal calculation", zap.Error(err))
		return nil, domain.ErrInternal
	}
	total, err := subtotal.Add(domain.DeliveryCharge(order.CustomerState))
	if err != nil {
		s.logger.Error("Total calculation", zap.Error(err))
		return nil, domain.ErrInternal
	}
	order.TotalAmount = total

	order.PaymentStatus = domain.PaymentStatusInitiated
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	session, err := s.gateway.CreatePayment(ctx, newOrder.Number, newOrder.TotalAmount)
	if err != nil {
		s.logger.Error("Create payment session",
			zap.String("order", string(newOrder.Number)), zap.Error(err))
		return nil, err
	}

	err = s.repo.SetGatewayReference(ctx, newOrder.Number, session.PhonePeOrderID)
	if err != nil {
		s.logger.Error("Store gateway reference",
			zap.String("order", string(newOrder.Number)), zap.Error(err))
		return nil, domain.ErrInternal
	}
	newOrder.PhonePeOrderID = session.PhonePeOrderID

	s.poller.SchedulePaymentCheck(newOrder.Number)

	return &port.CheckoutResult{
		Order:          newOrder,
		RedirectURL:    session.RedirectURL,
		PhonePeOrderID: session.PhonePeOrderID,
	}, nil
}

// Reconcile applies a payment observation to the stored order. The write is
// a conditional transition: it succeeds only while the stored status is
// non-terminal and differs from the computed one, so duplicate webhook
// deliveries and overlapping poll/webhook races collapse to no-ops. Only
// the caller that wins a transition into success fires the notifications.
func (s *Service) Reconcile(ctx context.Context, obs domain.PaymentObservation) (domain.PaymentStatus, error) {
	newStatus := domain.StatusFromGatewayState(obs.State)

	order, err := s.repo.ReadOrder(ctx, obs.OrderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.String("order", string(obs.OrderNumber)), zap.Error(err))
		return "", domain.ErrInternal
	}

	if order.PaymentStatus == newStatus {
		return newStatus, nil
	}
	if order.PaymentStatus.Terminal() {
		// Never downgrade a terminal status.
		return order.PaymentStatus, nil
	}

	won, err := s.repo.TransitionPaymentStatus(ctx, obs.OrderNumber, newStatus,
		obs.PhonePeOrderID, obs.ErrorCode)
	if err != nil {
		s.logger.Error("Transition payment status",
			zap.String("order", string(obs.OrderNumber)),
			zap.String("status", string(newStatus)), zap.Error(err))
		return "", domain.ErrInternal
	}
	if !won {
		// A concurrent reconciliation got there first.
		return newStatus, nil
	}

	s.logger.Info("Payment status updated",
		zap.String("order", string(obs.OrderNumber)),
		zap.String("from", string(order.PaymentStatus)),
		zap.String("to", string(newStatus)))

	if newStatus == domain.PaymentStatusSuccess {
		s.notifySuccess(ctx, obs.OrderNumber)
	}

	return newStatus, nil
}

// notifySuccess dispatches the customer and admin confirmations. Failures
// are logged and swallowed: notifications are best-effort and must never
// undo or block the status update.
func (s *Service) notifySuccess(ctx context.Context, number domain.OrderNumber) {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		s.logger.Error("Read order for notifications",
			zap.String("order", string(number)), zap.Error(err))
		return
	}

	if err := s.notifier.SendCustomerConfirmation(ctx, order); err != nil {
		s.logger.Error("Customer notification",
			zap.String("order", string(number)), zap.Error(err))
	}
	if err := s.notifier.SendAdminAlert(ctx, order); err != nil {
		s.logger.Error("Admin notification",
			zap.String("order", string(number)), zap.Error(err))
	}
}

// CheckPaymentStatus queries the gateway for the current payment state and
// reconciles it into the store. When the gateway is unreachable the stored
// status is returned as-is.
func (s *Service) CheckPaymentStatus(ctx context.Context, number domain.OrderNumber) (*port.StatusResult, error) {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.String("order", string(number)), zap.Error(err))
		return nil, domain.ErrInternal
	}

	obs, err := s.gateway.OrderStatus(ctx, number)
	if err != nil {
		s.logger.Warn("Gateway status query failed, serving stored status",
			zap.String("order", string(number)), zap.Error(err))
		return &port.StatusResult{Status: order.PaymentStatus, Order: order}, nil
	}

	status, err := s.Reconcile(ctx, *obs)
	if err != nil {
		return nil, err
	}

	fresh, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		fresh = order
	}

	return &port.StatusResult{Status: status, GatewayState: obs.State, Order: fresh}, nil
}

// AdminLogin exchanges the configured admin key for an access token.
func (s *Service) AdminLogin(ctx context.Context, key string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) != 1 {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken("admin")
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}
	return token, nil
}

func (s *Service) ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	list, err := s.repo.ListRecentOrders(ctx, limit)
	if err != nil {
		s.logger.Error("List recent orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

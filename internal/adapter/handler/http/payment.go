package http

import (
	"net/http"
	"time"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	eventOrderCompleted = "checkout.order.completed"
	eventOrderFailed    = "checkout.order.failed"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type statusRequest struct {
	MerchantOrderID string `json:"merchantOrderId" binding:"required"`
}

type orderResp struct {
	OrderNumber        string     `json:"order_number"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	TotalAmount        string     `json:"total_amount"`
	PaymentStatus      string     `json:"payment_status"`
	PhonePeOrderID     string     `json:"phonepe_order_id,omitempty"`
	ErrorMessage       string     `json:"error_message,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`
}

type statusResponse struct {
	Success       bool      `json:"success"`
	PaymentStatus string    `json:"paymentStatus"`
	PhonePeState  string    `json:"phonepeState,omitempty"`
	Order         orderResp `json:"order"`
}

func newOrderResp(o *domain.Order) orderResp {
	return orderResp{
		OrderNumber:        string(o.Number),
		CustomerName:       o.CustomerName,
		CustomerEmail:      o.CustomerEmail,
		TotalAmount:        formatAmount(o.TotalAmount),
		PaymentStatus:      string(o.PaymentStatus),
		PhonePeOrderID:     o.PhonePeOrderID,
		ErrorMessage:       o.ErrorMessage,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		PaymentCompletedAt: o.PaymentCompletedAt,
	}
}

// CheckStatus polls the gateway for the order's payment state. A gateway
// outage degrades to the stored status rather than an error.
func (ph *PaymentHandler) CheckStatus(ctx *gin.Context) {
	var req statusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	result, err := ph.service.CheckPaymentStatus(ctx, domain.OrderNumber(req.MerchantOrderID))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, statusResponse{
		Success:       true,
		PaymentStatus: string(result.Status),
		PhonePeState:  result.GatewayState,
		Order:         newOrderResp(result.Order),
	})
}

type webhookPayload struct {
	MerchantOrderID string `json:"merchantOrderId"`
	OrderID         string `json:"orderId"`
	State           string `json:"state"`
	ErrorCode       string `json:"errorCode"`
}

type webhookRequest struct {
	Event   string          `json:"event"`
	Payload *webhookPayload `json:"payload"`
}

// Webhook handles gateway push notifications. Authentication happens in the
// middleware before this handler runs.
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	var req webhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Event == "" || req.Payload == nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	obs := domain.PaymentObservation{
		OrderNumber:    domain.OrderNumber(req.Payload.MerchantOrderID),
		PhonePeOrderID: req.Payload.OrderID,
		State:          req.Payload.State,
		ErrorCode:      req.Payload.ErrorCode,
	}

	switch req.Event {
	case eventOrderCompleted:
		if obs.State == "" {
			obs.State = "COMPLETED"
		}
	case eventOrderFailed:
		if obs.State == "" {
			obs.State = "FAILED"
		}
	default:
		// Acknowledge unknown events; a 4xx would make the gateway retry forever.
		ph.logger.Warn("unknown webhook event", zap.String("event", req.Event))
		ctx.String(http.StatusOK, "OK")
		return
	}

	_, err := ph.service.Reconcile(ctx, obs)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "OK")
}

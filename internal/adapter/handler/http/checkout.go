package http

import (
	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	Handler
	service port.Service
}

func NewCheckoutHandler(service port.Service, logger *zap.Logger) (*CheckoutHandler, error) {
	return &CheckoutHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type checkoutItem struct {
	Name     string `json:"name" binding:"required"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Price    string `json:"price" binding:"required"`
}

type checkoutRequest struct {
	OrderNumber     string         `json:"orderNumber"`
	CustomerName    string         `json:"customerName" binding:"required"`
	CustomerEmail   string         `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	CustomerState   string         `json:"customerState" binding:"required"`
	Items           []checkoutItem `json:"items" binding:"required,min=1,dive"`
}

type checkoutResponse struct {
	Success        bool   `json:"success"`
	OrderNumber    string `json:"orderNumber"`
	RedirectURL    string `json:"redirectUrl"`
	PhonePeOrderID string `json:"phonepeOrderId"`
	TotalAmount    string `json:"totalAmount"`
}

func (ch *CheckoutHandler) Checkout(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order := &domain.Order{
		Number:          domain.OrderNumber(req.OrderNumber),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CustomerState:   req.CustomerState,
	}

	for _, item := range req.Items {
		price, err := decimal.Parse(item.Price)
		if err != nil {
			ch.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			ch.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		lineTotal, err := price.Mul(qty)
		if err != nil {
			ch.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductName: item.Name,
			ProductSize: item.Size,
			Quantity:    item.Quantity,
			Price:       price,
			LineTotal:   lineTotal,
		})
	}

	result, err := ch.service.Checkout(ctx, order)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, checkoutResponse{
		Success:        true,
		OrderNumber:    string(result.Order.Number),
		RedirectURL:    result.RedirectURL,
		PhonePeOrderID: result.PhonePeOrderID,
		TotalAmount:    formatAmount(result.Order.TotalAmount),
	})
}

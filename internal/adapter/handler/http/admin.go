package http

import (
	"strconv"
	"time"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	Handler
	service port.Service
}

func NewAdminHandler(service port.Service, logger *zap.Logger) (*AdminHandler, error) {
	return &AdminHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type loginRequest struct {
	Key string `json:"key" binding:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (ah *AdminHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	token, err := ah.service.AdminLogin(ctx, req.Key)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, loginResponse{Success: true, Token: token})
}

type adminOrderResp struct {
	OrderNumber    string    `json:"order_number"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	TotalAmount    string    `json:"total_amount"`
	PaymentStatus  string    `json:"payment_status"`
	PhonePeOrderID string    `json:"phonepe_order_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ah *AdminHandler) ListOrders(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	list, err := ah.service.ListRecentOrders(ctx, limit)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]adminOrderResp, 0, len(list))
	for _, o := range list {
		result = append(result, adminOrderResp{
			OrderNumber:    string(o.Number),
			CustomerName:   o.CustomerName,
			CustomerEmail:  o.CustomerEmail,
			TotalAmount:    formatAmount(o.TotalAmount),
			PaymentStatus:  string(o.PaymentStatus),
			PhonePeOrderID: o.PhonePeOrderID,
			CreatedAt:      o.CreatedAt,
			UpdatedAt:      o.UpdatedAt,
		})
	}

	ah.handleSuccess(ctx, result)
}

package http

import (
	"net/http"
	"strconv"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:       http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidToken:             http.StatusUnauthorized,
	domain.ErrUnauthorizedWebhook:      http.StatusUnauthorized,
	domain.ErrTokenCreation:            http.StatusInternalServerError,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrOrderNotFound:  http.StatusNotFound,
	domain.ErrOrderNoItems:   http.StatusUnprocessableEntity,
	domain.ErrAmountOverflow: http.StatusUnprocessableEntity,
	domain.ErrGatewayAuth:    http.StatusBadGateway,
	domain.ErrGatewaySession: http.StatusBadGateway,
	domain.ErrGatewayStatus:  http.StatusBadGateway,
}

// formatAmount renders a decimal amount with exactly two digits after the
// point, the way the storefront and emails display money.
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return strconv.FormatFloat(f, 'f', 2, 64)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a request parsing failure
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: err.Error()})
}

// handleAbort sends an error response and aborts the request with the mapped status code
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Success: false, Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResponse{Success: false, Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

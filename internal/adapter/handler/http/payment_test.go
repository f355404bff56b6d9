package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aazhiproducts/checkout/internal/adapter/config"
	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/aazhiproducts/checkout/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, svc port.Service, tokens port.TokenService) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewProduction()

	checkoutHandler, err := NewCheckoutHandler(svc, logger)
	assert.NoError(t, err)
	paymentHandler, err := NewPaymentHandler(svc, logger)
	assert.NoError(t, err)
	adminHandler, err := NewAdminHandler(svc, logger)
	assert.NoError(t, err)

	r, err := NewRouter(&config.Webhook{Username: "hook-user", Password: "hook-pass"},
		tokens, checkoutHandler, paymentHandler, adminHandler, logger)
	assert.NoError(t, err)
	return r
}

func TestWebhookAuth(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	body := `{"event":"checkout.order.completed","payload":{"merchantOrderId":"ORD-1001","orderId":"PP-1","state":"COMPLETED"}}`

	type webhookAuthTest struct {
		name      string
		header    string
		expStatus int
		expCall   bool
	}

	tests := []webhookAuthTest{
		{
			name:      "valid digest",
			header:    WebhookDigest("hook-user", "hook-pass"),
			expStatus: http.StatusOK,
			expCall:   true,
		},
		{
			name:      "missing header",
			header:    "",
			expStatus: http.StatusUnauthorized,
		},
		{
			name:      "wrong digest",
			header:    WebhookDigest("hook-user", "wrong-pass"),
			expStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := mock.NewMockService(mockCtrl)
			tokens := mock.NewMockTokenService(mockCtrl)
			if test.expCall {
				svc.EXPECT().Reconcile(gomock.Any(), domain.PaymentObservation{
					OrderNumber:    "ORD-1001",
					PhonePeOrderID: "PP-1",
					State:          "COMPLETED",
				}).Return(domain.PaymentStatusSuccess, nil)
			}
			// No service expectations for rejected requests: the store must
			// never be touched on an unauthorized webhook.

			r := newTestRouter(t, svc, tokens)

			req := httptest.NewRequest(http.MethodPost, "/api/webhook/phonepe",
				bytes.NewBufferString(body))
			if test.header != "" {
				req.Header.Set("Authorization", test.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, test.expStatus, w.Code)
		})
	}
}

func TestWebhookEvents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	digest := WebhookDigest("hook-user", "hook-pass")

	t.Run("failed event carries error code", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		tokens := mock.NewMockTokenService(mockCtrl)
		svc.EXPECT().Reconcile(gomock.Any(), domain.PaymentObservation{
			OrderNumber:    "ORD-1002",
			PhonePeOrderID: "PP-2",
			State:          "FAILED",
			ErrorCode:      "INSUFFICIENT_FUNDS",
		}).Return(domain.PaymentStatusFailed, nil)

		r := newTestRouter(t, svc, tokens)

		body := `{"event":"checkout.order.failed","payload":{"merchantOrderId":"ORD-1002","orderId":"PP-2","state":"FAILED","errorCode":"INSUFFICIENT_FUNDS"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/phonepe", bytes.NewBufferString(body))
		req.Header.Set("Authorization", digest)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown event is acknowledged without reconciliation", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		tokens := mock.NewMockTokenService(mockCtrl)

		r := newTestRouter(t, svc, tokens)

		body := `{"event":"checkout.order.refund","payload":{"merchantOrderId":"ORD-1001"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/phonepe", bytes.NewBufferString(body))
		req.Header.Set("Authorization", digest)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed payload", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		tokens := mock.NewMockTokenService(mockCtrl)

		r := newTestRouter(t, svc, tokens)

		req := httptest.NewRequest(http.MethodPost, "/api/webhook/phonepe",
			bytes.NewBufferString(`{"event":"checkout.order.completed"}`))
		req.Header.Set("Authorization", digest)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	tokens := mock.NewMockTokenService(mockCtrl)

	order := &domain.Order{
		Number:        "ORD-1001",
		CustomerName:  "Meena",
		CustomerEmail: "meena@example.com",
		TotalAmount:   decimal.MustParse("249.50"),
		PaymentStatus: domain.PaymentStatusSuccess,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	svc.EXPECT().CheckPaymentStatus(gomock.Any(), domain.OrderNumber("ORD-1001")).
		Return(&port.StatusResult{
			Status:       domain.PaymentStatusSuccess,
			GatewayState: "COMPLETED",
			Order:        order,
		}, nil)

	r := newTestRouter(t, svc, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/payment/status",
		bytes.NewBufferString(`{"merchantOrderId":"ORD-1001"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"paymentStatus":"success"`)
	assert.Contains(t, w.Body.String(), `"phonepeState":"COMPLETED"`)
}

func TestWebhookDigest(t *testing.T) {
	digest := WebhookDigest("hook-user", "hook-pass")
	assert.Len(t, digest, 64)
	assert.NotEqual(t, digest, WebhookDigest("hook-user", "other"))
	assert.Equal(t, digest, WebhookDigest("hook-user", "hook-pass"))
}

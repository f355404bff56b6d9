package phonepe_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aazhiproducts/checkout/internal/adapter/client/phonepe"
	"github.com/aazhiproducts/checkout/internal/adapter/config"
	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *phonepe.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	logger, _ := zap.NewProduction()
	client, err := phonepe.NewClient(&config.PhonePe{
		Host:          ts.URL,
		ClientID:      "client-id",
		ClientSecret:  "client-secret",
		ClientVersion: "1",
		RedirectURL:   "https://shop.example/payment-status.html",
	}, logger)
	assert.NoError(t, err)
	return client
}

func tokenHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "1", r.PostForm.Get("client_version"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_at":   1234567890,
		})
	}
}

func TestCreatePayment(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity-manager/v1/oauth/token", tokenHandler(t))
	mux.HandleFunc("/pg/checkout/v2/pay", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "O-Bearer test-token", r.Header.Get("Authorization"))

		var req struct {
			MerchantOrderID string `json:"merchantOrderId"`
			Amount          int64  `json:"amount"`
			PaymentFlow     struct {
				Type         string `json:"type"`
				MerchantURLs struct {
					RedirectURL string `json:"redirectUrl"`
				} `json:"merchantUrls"`
			} `json:"paymentFlow"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ORD-1001", req.MerchantOrderID)
		assert.Equal(t, int64(24950), req.Amount)
		assert.Equal(t, "PG_CHECKOUT", req.PaymentFlow.Type)
		assert.Contains(t, req.PaymentFlow.MerchantURLs.RedirectURL, "orderId=ORD-1001")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"orderId":     "PP-1",
			"redirectUrl": "https://gateway.example/checkout/PP-1",
		})
	})

	client := newTestClient(t, mux)

	session, err := client.CreatePayment(context.Background(), "ORD-1001", decimal.MustParse("249.50"))
	assert.NoError(t, err)
	assert.Equal(t, "PP-1", session.PhonePeOrderID)
	assert.Equal(t, "https://gateway.example/checkout/PP-1", session.RedirectURL)
}

func TestCreatePaymentNoRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity-manager/v1/oauth/token", tokenHandler(t))
	mux.HandleFunc("/pg/checkout/v2/pay", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"orderId": "PP-1"})
	})

	client := newTestClient(t, mux)

	session, err := client.CreatePayment(context.Background(), "ORD-1001", decimal.MustParse("100.00"))
	assert.Nil(t, session)
	assert.Equal(t, domain.ErrGatewaySession, err)
}

func TestCreatePaymentAuthFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity-manager/v1/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, mux)

	session, err := client.CreatePayment(context.Background(), "ORD-1001", decimal.MustParse("100.00"))
	assert.Nil(t, session)
	assert.Equal(t, domain.ErrGatewayAuth, err)
}

func TestOrderStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity-manager/v1/oauth/token", tokenHandler(t))
	mux.HandleFunc("/pg/checkout/v2/order/ORD-1002/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "O-Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("details"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"orderId":   "PP-2",
			"state":     "FAILED",
			"errorCode": "INSUFFICIENT_FUNDS",
		})
	})

	client := newTestClient(t, mux)

	obs, err := client.OrderStatus(context.Background(), "ORD-1002")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderNumber("ORD-1002"), obs.OrderNumber)
	assert.Equal(t, "PP-2", obs.PhonePeOrderID)
	assert.Equal(t, "FAILED", obs.State)
	assert.Equal(t, "INSUFFICIENT_FUNDS", obs.ErrorCode)
}

func TestOrderStatusGatewayError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity-manager/v1/oauth/token", tokenHandler(t))
	mux.HandleFunc("/pg/checkout/v2/order/ORD-1001/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, mux)

	obs, err := client.OrderStatus(context.Background(), "ORD-1001")
	assert.Nil(t, obs)
	assert.Equal(t, domain.ErrGatewayStatus, err)
}

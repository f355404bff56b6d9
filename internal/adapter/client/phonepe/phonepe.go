package phonepe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aazhiproducts/checkout/internal/adapter/config"
	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const requestTimeout = 15 * time.Second

// Client talks to the PhonePe checkout API: OAuth token exchange, payment
// session creation and order status queries.
type Client struct {
	logger        *zap.Logger
	host          string
	clientID      string
	clientSecret  string
	clientVersion string
	redirectURL   string
	httpClient    *http.Client
}

func NewClient(cfg *config.PhonePe, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:        log,
		host:          strings.TrimRight(cfg.Host, "/"),
		clientID:      cfg.ClientID,
		clientSecret:  cfg.ClientSecret,
		clientVersion: cfg.ClientVersion,
		redirectURL:   cfg.RedirectURL,
		httpClient:    &http.Client{Timeout: requestTimeout},
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type payRequest struct {
	MerchantOrderID string      `json:"merchantOrderId"`
	Amount          int64       `json:"amount"`
	PaymentFlow     paymentFlow `json:"paymentFlow"`
}

type paymentFlow struct {
	Type         string       `json:"type"`
	MerchantURLs merchantURLs `json:"merchantUrls"`
}

type merchantURLs struct {
	RedirectURL string `json:"redirectUrl"`
}

type payResponse struct {
	OrderID     string `json:"orderId"`
	RedirectURL string `json:"redirectUrl"`
}

type statusResponse struct {
	OrderID   string `json:"orderId"`
	State     string `json:"state"`
	ErrorCode string `json:"errorCode"`
}

// token performs the client-credentials exchange. The gateway insists on a
// form-encoded body with the client_version field.
func (c *Client) token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("client_version", c.clientVersion)
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	requestStr := c.host + "/identity-manager/v1/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.ErrGatewayAuth
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("token request", zap.Error(err))
		return "", domain.ErrGatewayAuth
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("token request rejected",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return "", domain.ErrGatewayAuth
	}

	var result tokenResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil || result.AccessToken == "" {
		c.logger.Error("token response decode", zap.Error(err))
		return "", domain.ErrGatewayAuth
	}

	return result.AccessToken, nil
}

func (c *Client) CreatePayment(ctx context.Context, number domain.OrderNumber,
	amount decimal.Decimal) (*port.PaymentSession, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	paise, err := domain.MinorUnits(amount)
	if err != nil {
		return nil, err
	}

	payload := payRequest{
		MerchantOrderID: string(number),
		Amount:          paise,
		PaymentFlow: paymentFlow{
			Type: "PG_CHECKOUT",
			MerchantURLs: merchantURLs{
				RedirectURL: c.redirectURL + "?orderId=" + url.QueryEscape(string(number)),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.ErrGatewaySession
	}

	requestStr := c.host + "/pg/checkout/v2/pay"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return nil, domain.ErrGatewaySession
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "O-Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("pay request", zap.String("order", string(number)), zap.Error(err))
		return nil, domain.ErrGatewaySession
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("pay request rejected", zap.String("order", string(number)),
			zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		return nil, domain.ErrGatewaySession
	}

	var result payResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.logger.Error("pay response decode", zap.String("order", string(number)), zap.Error(err))
		return nil, domain.ErrGatewaySession
	}
	if result.RedirectURL == "" {
		c.logger.Error("pay response has no redirect url", zap.String("order", string(number)))
		return nil, domain.ErrGatewaySession
	}

	return &port.PaymentSession{
		PhonePeOrderID: result.OrderID,
		RedirectURL:    result.RedirectURL,
	}, nil
}

func (c *Client) OrderStatus(ctx context.Context, number domain.OrderNumber) (*domain.PaymentObservation, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	requestStr := fmt.Sprintf("%s/pg/checkout/v2/order/%s/status?details=true",
		c.host, url.PathEscape(string(number)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, domain.ErrGatewayStatus
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "O-Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("status request", zap.String("order", string(number)), zap.Error(err))
		return nil, domain.ErrGatewayStatus
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("status request rejected", zap.String("order", string(number)),
			zap.Int("status", resp.StatusCode))
		return nil, domain.ErrGatewayStatus
	}

	var result statusResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.logger.Error("status response decode", zap.String("order", string(number)), zap.Error(err))
		return nil, domain.ErrGatewayStatus
	}

	return &domain.PaymentObservation{
		OrderNumber:    number,
		PhonePeOrderID: result.OrderID,
		State:          result.State,
		ErrorCode:      result.ErrorCode,
	}, nil
}

package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/aazhiproducts/checkout/internal/adapter/config"
	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const apiURL = "https://api.resend.com/emails"
const requestTimeout = 15 * time.Second

// Mailer dispatches transactional order emails through the Resend API.
type Mailer struct {
	logger     *zap.Logger
	apiKey     string
	from       string
	adminEmail string
	endpoint   string
	httpClient *http.Client
}

func NewMailer(cfg *config.Email, log *zap.Logger) (*Mailer, error) {
	return &Mailer{
		logger:     log,
		apiKey:     cfg.APIKey,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		endpoint:   apiURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return strconv.FormatFloat(f, 'f', 2, 64)
}

type snapshotItem struct {
	Name      string
	Size      string
	Quantity  int
	LineTotal string
}

type orderSnapshot struct {
	OrderNumber  string
	CustomerName string
	Phone        string
	Email        string
	Address      string
	State        string
	Subtotal     string
	Delivery     string
	Total        string
	OrderDate    string
	Items        []snapshotItem
}

func buildSnapshot(order *domain.Order) (*orderSnapshot, error) {
	subtotal, err := order.Subtotal()
	if err != nil {
		return nil, err
	}
	// The delivery charge was fixed at checkout; derive it from the stored
	// total instead of recomputing the regional rule.
	delivery, err := order.TotalAmount.Sub(subtotal)
	if err != nil {
		return nil, err
	}
	if delivery.Cmp(decimal.Zero) < 0 {
		delivery = decimal.Zero
	}

	snap := orderSnapshot{
		OrderNumber:  string(order.Number),
		CustomerName: order.CustomerName,
		Phone:        order.CustomerPhone,
		Email:        order.CustomerEmail,
		Address:      order.CustomerAddress,
		State:        order.CustomerState,
		Subtotal:     formatAmount(subtotal),
		Delivery:     formatAmount(delivery),
		Total:        formatAmount(order.TotalAmount),
		OrderDate:    order.CreatedAt.Format("02/01/2006"),
	}
	for _, item := range order.Items {
		snap.Items = append(snap.Items, snapshotItem{
			Name:      item.ProductName,
			Size:      item.ProductSize,
			Quantity:  item.Quantity,
			LineTotal: formatAmount(item.LineTotal),
		})
	}
	return &snap, nil
}

func (m *Mailer) SendCustomerConfirmation(ctx context.Context, order *domain.Order) error {
	snap, err := buildSnapshot(order)
	if err != nil {
		m.logger.Error("build order snapshot", zap.Error(err))
		return domain.ErrNotificationSend
	}
	return m.send(ctx, order.CustomerEmail,
		"Order Confirmed - "+snap.OrderNumber, customerTemplate, snap)
}

func (m *Mailer) SendAdminAlert(ctx context.Context, order *domain.Order) error {
	snap, err := buildSnapshot(order)
	if err != nil {
		m.logger.Error("build order snapshot", zap.Error(err))
		return domain.ErrNotificationSend
	}
	return m.send(ctx, m.adminEmail,
		"NEW ORDER "+snap.OrderNumber, adminTemplate, snap)
}

func (m *Mailer) send(ctx context.Context, to string, subject string,
	tmpl *template.Template, snap *orderSnapshot) error {
	var html bytes.Buffer
	if err := tmpl.Execute(&html, snap); err != nil {
		m.logger.Error("render email", zap.Error(err))
		return domain.ErrNotificationSend
	}

	body, err := json.Marshal(emailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html.String(),
	})
	if err != nil {
		return domain.ErrNotificationSend
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.ErrNotificationSend
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Error("email request", zap.String("to", to), zap.Error(err))
		return domain.ErrNotificationSend
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		m.logger.Error("email request rejected",
			zap.String("to", to), zap.Int("status", resp.StatusCode))
		return domain.ErrNotificationSend
	}

	m.logger.Debug("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

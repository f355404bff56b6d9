package domain_test

import (
	"testing"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromGatewayState(t *testing.T) {
	tests := []struct {
		state    string
		expected domain.PaymentStatus
	}{
		{"COMPLETED", domain.PaymentStatusSuccess},
		{"FAILED", domain.PaymentStatusFailed},
		{"PENDING", domain.PaymentStatusPending},
		{"PROCESSING", domain.PaymentStatusPending},
		{"", domain.PaymentStatusPending},
		{"SOMETHING_NEW", domain.PaymentStatusPending},
	}

	for _, test := range tests {
		t.Run(test.state, func(t *testing.T) {
			assert.Equal(t, test.expected, domain.StatusFromGatewayState(test.state))
		})
	}
}

func TestPaymentStatusTerminal(t *testing.T) {
	assert.True(t, domain.PaymentStatusSuccess.Terminal())
	assert.True(t, domain.PaymentStatusFailed.Terminal())
	assert.False(t, domain.PaymentStatusInitiated.Terminal())
	assert.False(t, domain.PaymentStatusPending.Terminal())
}

func TestOrderSubtotal(t *testing.T) {
	order := domain.Order{
		Items: []domain.OrderItem{
			{LineTotal: decimal.MustParse("199.50")},
			{LineTotal: decimal.MustParse("100.00")},
		},
	}

	subtotal, err := order.Subtotal()
	assert.NoError(t, err)
	assert.Equal(t, 0, subtotal.Cmp(decimal.MustParse("299.50")))
}

package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSuccess   PaymentStatus = "success"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Terminal reports whether no further transition is permitted from s.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

// StatusFromGatewayState maps a raw gateway state string to a payment status.
// The mapping is total: any state outside the terminal families is pending.
func StatusFromGatewayState(state string) PaymentStatus {
	switch state {
	case "COMPLETED":
		return PaymentStatusSuccess
	case "FAILED":
		return PaymentStatusFailed
	default:
		return PaymentStatusPending
	}
}

type OrderNumber string

type OrderItem struct {
	ProductName string
	ProductSize string
	Quantity    int
	Price       decimal.Decimal
	LineTotal   decimal.Decimal
}

type Order struct {
	Number             OrderNumber
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	CustomerAddress    string
	CustomerState      string
	Items              []OrderItem
	TotalAmount        decimal.Decimal
	PaymentStatus      PaymentStatus
	PhonePeOrderID     string
	ErrorMessage       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	PaymentCompletedAt *time.Time
}

// Subtotal sums the line totals of all items.
func (o *Order) Subtotal() (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range o.Items {
		s, err := sum.Add(item.LineTotal)
		if err != nil {
			return decimal.Zero, err
		}
		sum = s
	}
	return sum, nil
}

package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}

	return false
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer:
		return true
	}

	return false
}

type Order struct {
	ID         uuid.UUID `json:"id"`
	Invoice    string    `json:"invoice"`
	UserID     uuid.UUID `json:"user_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	PriceID    uuid.UUID `json:"price_id"`

	// CustomerName and CustomerEmail are snapshots taken at creation time.
	// They are deliberately not kept in sync with later customer edits.
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`

	OrderDate     time.Time       `json:"order_date"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Weight        decimal.Decimal `json:"weight"`
	Discount      int64           `json:"discount"`
	TotalAmount   int64           `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PickupDate    *time.Time      `json:"pickup_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty"`
	Price    *Price    `json:"price,omitempty"`
	User     *User     `json:"user,omitempty"`
}

type OrderFilter struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	Search        string
	Page          uint64
	PerPage       uint64
}

// OrderUpdate is the partial status-transition payload. Nil fields are left untouched.
type OrderUpdate struct {
	Status        OrderStatus
	PaymentStatus *PaymentStatus
	PickupDate    *time.Time
}

// CalculateTotal computes weight * unitPrice rounded half away from zero to a
// whole currency amount, minus discount. Negative results are not clamped.
func CalculateTotal(weight, unitPrice decimal.Decimal, discount int64) int64 {
	return weight.Mul(unitPrice).Round(0).IntPart() - discount
}

// FormatInvoice renders the human-readable order number: the day plus the
// 1-based position within that day, zero-padded to four digits.
func FormatInvoice(day time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", day.Format("20060102"), seq)
}

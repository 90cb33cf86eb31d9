package domain

import "time"

// CheckoutState — состояние оформления заказа.
// Единственный путь: Editing -> Submitting -> Completed, без отмены и повтора.
type CheckoutState string

const (
	CheckoutEditing    CheckoutState = "Editing"
	CheckoutSubmitting CheckoutState = "Submitting"
	CheckoutCompleted  CheckoutState = "Completed"
)

// Order — оформленный заказ с зафиксированной разбивкой цены в центах.
type Order struct {
	ID         string // uuid
	UserID     string
	Lines      []CartLine
	Subtotal   int64
	Discount   int64
	Shipping   int64
	Tax        int64
	Total      int64
	CouponCode string
	CreatedAt  time.Time
}

func NewOrder(id, userID string, lines []CartLine, subtotal, discount, shipping, tax, total int64, couponCode string) *Order {
	return &Order{
		ID:         id,
		UserID:     userID,
		Lines:      lines,
		Subtotal:   subtotal,
		Discount:   discount,
		Shipping:   shipping,
		Tax:        tax,
		Total:      total,
		CouponCode: couponCode,
	}
}

package order

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

type Order struct {
	ID              int64     `json:"id"`
	UserID          uint      `json:"user_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerAddress string    `json:"customer_address"`
	TotalAmount     float64   `json:"total_amount"`
	EventDate       time.Time `json:"event_date"`
	OrderDate       time.Time `json:"order_date"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	Notes           *string   `json:"notes,omitempty"`
}

type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	MenuID    int64   `json:"menu_id"`
	MenuName  string  `json:"menu_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// CustomerInfo is the checkout form payload.
type CustomerInfo struct {
	Name      string    `json:"customer_name"`
	Phone     string    `json:"customer_phone"`
	Address   string    `json:"customer_address"`
	EventDate time.Time `json:"event_date"`
	Notes     *string   `json:"notes,omitempty"`
}

// CustomerUpdate is the subset a customer may change after placing an
// order. Nil fields stay untouched.
type CustomerUpdate struct {
	Name      *string    `json:"customer_name,omitempty"`
	Phone     *string    `json:"customer_phone,omitempty"`
	Address   *string    `json:"customer_address,omitempty"`
	EventDate *time.Time `json:"event_date,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// CheckoutResult pairs the persisted order with the handoff link the
// customer opens to confirm via chat.
type CheckoutResult struct {
	Order           Order  `json:"order"`
	WhatsAppMessage string `json:"whatsapp_message"`
	WhatsAppLink    string `json:"whatsapp_link"`
}

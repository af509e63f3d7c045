package models

import "time"

// Order is a legacy purchase snapshot based on the 'orders' table.
// Orders predate the per-student item map and are kept read-only for
// historical receipts; there are no write paths against them.
type Order struct {
	ID            int64       `json:"id" db:"id"`
	StudentID     int64       `json:"studentId" db:"student_id"`
	Items         []OrderItem `json:"orderItems" db:"items"`
	PaymentMethod string      `json:"paymentMethod" db:"payment_method"`
	TotalPrice    float64     `json:"totalPrice" db:"total_price"`
	IsPaid        bool        `json:"isPaid" db:"is_paid"`
	PaidAt        *time.Time  `json:"paidAt,omitempty" db:"paid_at"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem is one line of a legacy order snapshot.
type OrderItem struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	ProductID int64   `json:"productId"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

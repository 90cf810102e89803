package models

import "time"

// Transaction statuses and sources.
const (
	TransactionStatusCompleted = "COMPLETED"

	TransactionSourcePOS         = "POS"
	TransactionSourceOnlineStore = "ONLINE_STORE"
)

// Transaction is an immutable sales record. It is created once inside the
// checkout or webhook transaction and never mutated afterwards.
type Transaction struct {
	ID            int64             `json:"id"`
	InvoiceNumber string            `json:"invoice_number" db:"invoice_number"`
	TotalAmount   float64           `json:"total_amount" db:"total_amount"`
	PaymentMethod string            `json:"payment_method" db:"payment_method"`
	Status        string            `json:"status" db:"status"`
	Source        string            `json:"source" db:"source"`
	LocationID    int64             `json:"location_id" db:"location_id"`
	CustomerID    *int64            `json:"customer_id,omitempty" db:"customer_id"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	Items         []TransactionItem `json:"items,omitempty"`
	Location      *Location         `json:"location,omitempty"`
	Customer      *Customer         `json:"customer,omitempty"`
}

// TransactionItem is an immutable line item. Price is the unit price at the
// time of sale; audit totals must sum these, never recompute from the
// current product price.
type TransactionItem struct {
	ID            int64    `json:"id"`
	TransactionID int64    `json:"transaction_id" db:"transaction_id"`
	ProductID     int64    `json:"product_id" db:"product_id"`
	Quantity      int      `json:"quantity" db:"quantity"`
	Price         float64  `json:"price" db:"price"`
	Product       *Product `json:"product,omitempty"`
}

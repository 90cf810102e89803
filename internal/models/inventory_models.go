package models

import "time"

// Inventory holds the quantity of a product at one location. Rows are always
// addressed by the compound (product_id, location_id) key.
type Inventory struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id" db:"product_id"`
	LocationID int64     `json:"location_id" db:"location_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
	Product    *Product  `json:"product,omitempty"`
	Location   *Location `json:"location,omitempty"`
}

// StockMovement is the append-only audit record for any inventory change.
// Quantity is always a positive magnitude; direction is expressed by which
// of the location endpoints is set.
type StockMovement struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id" db:"product_id"`
	FromLocationID *int64    `json:"from_location_id,omitempty" db:"from_location_id"`
	ToLocationID   *int64    `json:"to_location_id,omitempty" db:"to_location_id"`
	Quantity       int       `json:"quantity" db:"quantity"`
	Reason         string    `json:"reason" db:"reason"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	Product        *Product  `json:"product,omitempty"`
}

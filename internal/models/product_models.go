package models

import "time"

// Product approval statuses.
const (
	ProductStatusPending  = "PENDING"
	ProductStatusApproved = "APPROVED"
	ProductStatusRejected = "REJECTED"
)

// Product represents a catalog entry. Stock quantities never live on the
// product itself; they are kept per (product, location) in Inventory.
type Product struct {
	ID           int64       `json:"id"`
	SKU          string      `json:"sku" db:"sku" binding:"required"`
	Name         string      `json:"name" db:"name" binding:"required"`
	Barcode      *string     `json:"barcode,omitempty" db:"barcode"`
	ImageURL     *string     `json:"image_url,omitempty" db:"image_url"`
	Category     string      `json:"category" db:"category" binding:"required"`
	CostPrice    float64     `json:"cost_price" db:"cost_price"`
	SellingPrice float64     `json:"selling_price" db:"selling_price"`
	TaxPct       float64     `json:"tax_pct" db:"tax_pct"`
	ReorderLevel int         `json:"reorder_level" db:"reorder_level"`
	Status       string      `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
	Inventory    []Inventory `json:"inventory,omitempty"` // For joined per-location quantities
}

// Location types.
const (
	LocationTypeWarehouse  = "Warehouse"
	LocationTypeStore      = "Store"
	LocationTypeExhibition = "Exhibition"
)

// Location is a warehouse, store or exhibition site that inventory and
// transactions are attributed to.
type Location struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Type      string    `json:"type" db:"type" binding:"required"`
	Address   *string   `json:"address,omitempty" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

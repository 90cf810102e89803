package models

import "time"

// User represents a staff account in the system.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	RoleID       int64     `json:"role_id" db:"role_id"`
	LocationID   *int64    `json:"location_id,omitempty" db:"location_id"` // Set for users bound to a single location
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	Role         *Role     `json:"role,omitempty"` // For joining with Role
}

// Role represents a user role.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Role names used by the route-level allow-lists.
const (
	RoleSuperAdmin       = "Super Admin"
	RoleStoreManager     = "Store Manager"
	RoleInventoryManager = "Inventory Manager"
	RoleWarehouseManager = "Warehouse Manager"
	RoleCashier          = "Cashier"
)

// AuthContext is the request-scoped authorization context extracted from the
// session token. It is passed explicitly into operations that need to know
// who is acting and which location they are bound to.
type AuthContext struct {
	UserID     int64
	Role       string
	LocationID *int64
}

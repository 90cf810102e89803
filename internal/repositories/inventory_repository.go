package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holdup_backend/internal/models"
)

// InventoryRepository defines the interface for inventory and stock movement
// database operations. All quantity mutations are relative increments so two
// concurrent transactions can never lose an update to a read-modify-write.
type InventoryRepository interface {
	// GetQuantity returns the quantity at (product, location), or ErrNotFound
	// if no inventory row exists there.
	GetQuantity(executor SQLExecutor, productID, locationID int64) (int, error)

	// AdjustQuantity upserts the inventory row at (product, location),
	// incrementing its quantity by delta (negative delta deducts). Returns
	// the row as it stands after the increment; the caller decides whether a
	// negative result aborts the surrounding transaction.
	AdjustQuantity(executor SQLExecutor, productID, locationID int64, delta int) (*models.Inventory, error)

	// DecrementExisting decrements an existing inventory row, returning
	// ErrNotFound when there is no row at (product, location). Used by
	// transfers, where a missing source row is a caller error rather than an
	// implicit empty record.
	DecrementExisting(executor SQLExecutor, productID, locationID int64, quantity int) (*models.Inventory, error)

	// CreateMovement appends one audit record. Movements are never updated
	// or deleted.
	CreateMovement(executor SQLExecutor, movement *models.StockMovement) (int64, error)
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetQuantity(executor SQLExecutor, productID, locationID int64) (int, error) {
	var quantity int
	query := `SELECT quantity FROM inventory WHERE product_id = $1 AND location_id = $2`
	err := executor.QueryRow(query, productID, locationID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: getting quantity for product %d at location %d: %v", ErrDatabaseError, productID, locationID, err)
	}
	return quantity, nil
}

func (r *inventoryRepository) AdjustQuantity(executor SQLExecutor, productID, locationID int64, delta int) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `INSERT INTO inventory (product_id, location_id, quantity, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $4)
	          ON CONFLICT (product_id, location_id)
	          DO UPDATE SET quantity = inventory.quantity + $3, updated_at = $4
	          RETURNING id, product_id, location_id, quantity, created_at, updated_at`
	err := executor.QueryRow(query, productID, locationID, delta, time.Now()).Scan(
		&inventory.ID, &inventory.ProductID, &inventory.LocationID, &inventory.Quantity,
		&inventory.CreatedAt, &inventory.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: adjusting quantity for product %d at location %d: %v", ErrDatabaseError, productID, locationID, err)
	}
	return inventory, nil
}

func (r *inventoryRepository) DecrementExisting(executor SQLExecutor, productID, locationID int64, quantity int) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `UPDATE inventory SET quantity = quantity - $3, updated_at = $4
	          WHERE product_id = $1 AND location_id = $2
	          RETURNING id, product_id, location_id, quantity, created_at, updated_at`
	err := executor.QueryRow(query, productID, locationID, quantity, time.Now()).Scan(
		&inventory.ID, &inventory.ProductID, &inventory.LocationID, &inventory.Quantity,
		&inventory.CreatedAt, &inventory.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: decrementing product %d at location %d: %v", ErrDatabaseError, productID, locationID, err)
	}
	return inventory, nil
}

func (r *inventoryRepository) CreateMovement(executor SQLExecutor, movement *models.StockMovement) (int64, error) {
	query := `INSERT INTO stock_movements (product_id, from_location_id, to_location_id, quantity, reason, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	err := executor.QueryRow(query,
		movement.ProductID, movement.FromLocationID, movement.ToLocationID,
		movement.Quantity, movement.Reason, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating stock movement: %v", ErrDatabaseError, err)
	}
	return movement.ID, nil
}

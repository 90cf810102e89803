package services

import (
	"database/sql"
	"errors"
	"fmt"

	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"
	"holdup_backend/pkg/utils"
)

// --- Data Transfer Objects (DTOs) ---

// AdjustStockRequest is the manual adjustment payload. Quantity is a signed
// delta: positive adds, negative removes.
type AdjustStockRequest struct {
	ProductID  int64  `json:"product_id" binding:"required"`
	LocationID int64  `json:"location_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// TransferStockRequest moves quantity between two different locations.
type TransferStockRequest struct {
	ProductID      int64 `json:"product_id" binding:"required"`
	FromLocationID int64 `json:"from_location_id" binding:"required"`
	ToLocationID   int64 `json:"to_location_id" binding:"required"`
	Quantity       int   `json:"quantity" binding:"required,gt=0"`
}

// TransferStockResponse carries both affected inventory rows.
type TransferStockResponse struct {
	SourceInventory *models.Inventory `json:"source_inventory"`
	DestInventory   *models.Inventory `json:"dest_inventory"`
}

// --- InventoryService Interface ---

type InventoryService interface {
	AdjustStock(req AdjustStockRequest) (*models.Inventory, error)
	TransferStock(req TransferStockRequest) (*TransferStockResponse, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	db            *sql.DB // For managing transactions
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(ir repositories.InventoryRepository, db *sql.DB) InventoryService {
	return &inventoryService{inventoryRepo: ir, db: db}
}

// AdjustStock atomically upserts the inventory row by the signed delta and
// verifies the result is non-negative. The post-check runs inside the
// transaction, so a violation rolls back the increment and the movement.
func (s *inventoryService) AdjustStock(req AdjustStockRequest) (*models.Inventory, error) {
	if req.Quantity == 0 {
		return nil, fmt.Errorf("%w: adjustment quantity must be non-zero", ErrValidation)
	}
	if utils.IsEmpty(req.Reason) {
		return nil, fmt.Errorf("%w: adjustment reason is required", ErrValidation)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	inventory, err := s.inventoryRepo.AdjustQuantity(tx, req.ProductID, req.LocationID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust quantity: %w", err)
	}
	if inventory.Quantity < 0 {
		return nil, fmt.Errorf("%w. Cannot reduce by %d", ErrInsufficientStock, abs(req.Quantity))
	}

	movement := models.StockMovement{
		ProductID: req.ProductID,
		Quantity:  abs(req.Quantity),
		Reason:    req.Reason,
	}
	if req.Quantity > 0 {
		movement.ToLocationID = &req.LocationID
	} else {
		movement.FromLocationID = &req.LocationID
	}
	if _, err := s.inventoryRepo.CreateMovement(tx, &movement); err != nil {
		return nil, fmt.Errorf("failed to record stock movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit adjustment transaction: %w", err)
	}
	return inventory, nil
}

// TransferStock atomically moves quantity from one location to another,
// appending exactly one movement record for the whole transfer.
func (s *inventoryService) TransferStock(req TransferStockRequest) (*TransferStockResponse, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: transfer quantity must be positive", ErrValidation)
	}
	if req.FromLocationID == req.ToLocationID {
		return nil, ErrSameLocation
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	source, err := s.inventoryRepo.DecrementExisting(tx, req.ProductID, req.FromLocationID, req.Quantity)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSourceInventoryMissing
		}
		return nil, fmt.Errorf("failed to deduct from source location: %w", err)
	}
	if source.Quantity < 0 {
		return nil, fmt.Errorf("%w at source location", ErrInsufficientStock)
	}

	dest, err := s.inventoryRepo.AdjustQuantity(tx, req.ProductID, req.ToLocationID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add to destination location: %w", err)
	}

	movement := models.StockMovement{
		ProductID:      req.ProductID,
		FromLocationID: &req.FromLocationID,
		ToLocationID:   &req.ToLocationID,
		Quantity:       req.Quantity,
		Reason:         "Transfer",
	}
	if _, err := s.inventoryRepo.CreateMovement(tx, &movement); err != nil {
		return nil, fmt.Errorf("failed to record stock movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transfer transaction: %w", err)
	}
	return &TransferStockResponse{SourceInventory: source, DestInventory: dest}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

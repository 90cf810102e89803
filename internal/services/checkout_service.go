package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"
)

// --- Data Transfer Objects (DTOs) ---

// CartLine is one entry of a POS cart.
type CartLine struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest is the POS checkout payload. TotalAmount is accepted as
// stated by the client and stored on the transaction without server-side
// recomputation (known trust gap, kept deliberately).
type CheckoutRequest struct {
	Cart          []CartLine `json:"cart" binding:"required,min=1,dive"`
	PaymentMethod string     `json:"payment_method" binding:"required"`
	LocationID    int64      `json:"location_id"`
	TotalAmount   *float64   `json:"total_amount" binding:"required"`
	CustomerID    *int64     `json:"customer_id"`
}

// CheckoutResponse is returned on a successful checkout.
type CheckoutResponse struct {
	TransactionID int64  `json:"transaction_id"`
	InvoiceNumber string `json:"invoice_number"`
}

// --- CheckoutService Interface ---

type CheckoutService interface {
	Checkout(actor models.AuthContext, req CheckoutRequest) (*CheckoutResponse, error)
}

type checkoutService struct {
	transactionRepo repositories.TransactionRepository
	productRepo     repositories.ProductRepository
	inventoryRepo   repositories.InventoryRepository
	db              *sql.DB // For managing transactions
}

// NewCheckoutService creates a new instance of CheckoutService.
func NewCheckoutService(
	tr repositories.TransactionRepository,
	pr repositories.ProductRepository,
	ir repositories.InventoryRepository,
	db *sql.DB,
) CheckoutService {
	return &checkoutService{
		transactionRepo: tr,
		productRepo:     pr,
		inventoryRepo:   ir,
		db:              db,
	}
}

// newInvoiceNumber builds a POS invoice number from the current timestamp
// plus a random suffix.
func newInvoiceNumber() string {
	return fmt.Sprintf("INV-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// Checkout atomically creates one transaction with its line items and
// deducts inventory at the acting location. Any insufficiency aborts the
// whole operation with no partial deduction.
func (s *checkoutService) Checkout(actor models.AuthContext, req CheckoutRequest) (*CheckoutResponse, error) {
	// A user bound to a location always acts at that location.
	locationID := req.LocationID
	if actor.LocationID != nil {
		locationID = *actor.LocationID
	}
	if locationID == 0 {
		return nil, fmt.Errorf("%w: missing location for checkout", ErrValidation)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	transaction := models.Transaction{
		InvoiceNumber: newInvoiceNumber(),
		TotalAmount:   *req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        models.TransactionStatusCompleted,
		Source:        models.TransactionSourcePOS,
		LocationID:    locationID,
		CustomerID:    req.CustomerID,
	}
	transactionID, err := s.transactionRepo.CreateTransaction(tx, &transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction record: %w", err)
	}

	for _, line := range req.Cart {
		product, err := s.productRepo.GetProductByID(tx, line.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: product ID %d", ErrProductNotFound, line.ProductID)
			}
			return nil, fmt.Errorf("failed to fetch product %d: %w", line.ProductID, err)
		}

		available, err := s.inventoryRepo.GetQuantity(tx, product.ID, locationID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to fetch stock for %s: %w", product.Name, err)
		}
		if available < line.Quantity {
			return nil, fmt.Errorf("%w for %s. Requested: %d, Available: %d",
				ErrInsufficientStock, product.Name, line.Quantity, available)
		}

		if _, err := s.inventoryRepo.DecrementExisting(tx, product.ID, locationID, line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to deduct stock for %s: %w", product.Name, err)
		}

		item := models.TransactionItem{
			TransactionID: transactionID,
			ProductID:     product.ID,
			Quantity:      line.Quantity,
			Price:         product.SellingPrice,
		}
		if _, err := s.transactionRepo.CreateTransactionItem(tx, &item); err != nil {
			return nil, fmt.Errorf("failed to create transaction item for %s: %w", product.Name, err)
		}

		movement := models.StockMovement{
			ProductID:      product.ID,
			FromLocationID: &locationID,
			Quantity:       line.Quantity,
			Reason:         "POS Sale " + transaction.InvoiceNumber,
		}
		if _, err := s.inventoryRepo.CreateMovement(tx, &movement); err != nil {
			return nil, fmt.Errorf("failed to record stock movement for %s: %w", product.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}

	return &CheckoutResponse{TransactionID: transactionID, InvoiceNumber: transaction.InvoiceNumber}, nil
}

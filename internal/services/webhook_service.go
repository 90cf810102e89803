package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"
	"holdup_backend/pkg/utils"
)

// --- Data Transfer Objects (DTOs) ---

// WebhookOrderItem is one fulfillment line from an external store.
type WebhookOrderItem struct {
	SKU      string  `json:"sku" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price"`
}

// WebhookOrderRequest is the e-commerce fulfillment payload.
type WebhookOrderRequest struct {
	OrderID    string             `json:"order_id" binding:"required"`
	Source     string             `json:"source"`
	Items      []WebhookOrderItem `json:"items" binding:"required,min=1,dive"`
	LocationID *int64             `json:"location_id"`
}

// WebhookOrderResponse is returned after a processed fulfillment event.
type WebhookOrderResponse struct {
	TransactionID int64  `json:"transaction_id"`
	InvoiceNumber string `json:"invoice_number"`
}

// --- WebhookService Interface ---

type WebhookService interface {
	ProcessOrder(req WebhookOrderRequest) (*WebhookOrderResponse, error)
}

type webhookService struct {
	transactionRepo repositories.TransactionRepository
	productRepo     repositories.ProductRepository
	inventoryRepo   repositories.InventoryRepository
	locationRepo    repositories.LocationRepository
	db              *sql.DB // For managing transactions
}

// NewWebhookService creates a new instance of WebhookService.
func NewWebhookService(
	tr repositories.TransactionRepository,
	pr repositories.ProductRepository,
	ir repositories.InventoryRepository,
	lr repositories.LocationRepository,
	db *sql.DB,
) WebhookService {
	return &webhookService{
		transactionRepo: tr,
		productRepo:     pr,
		inventoryRepo:   ir,
		locationRepo:    lr,
		db:              db,
	}
}

// ProcessOrder fulfills an external order against the resolved fulfillment
// location. Unknown SKUs are skipped with a warning rather than failing the
// batch, and stock may go negative here so fulfillment backlog stays visible.
func (s *webhookService) ProcessOrder(req WebhookOrderRequest) (*WebhookOrderResponse, error) {
	source := req.Source
	if source == "" {
		source = models.TransactionSourceOnlineStore
	}

	location, err := s.resolveFulfillmentLocation(req.LocationID)
	if err != nil {
		return nil, err
	}

	var totalAmount float64
	for _, item := range req.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	transaction := models.Transaction{
		InvoiceNumber: fmt.Sprintf("WEB-%s-%s-%d", source, req.OrderID, time.Now().UnixMilli()),
		TotalAmount:   totalAmount,
		PaymentMethod: "ONLINE",
		Status:        models.TransactionStatusCompleted,
		Source:        source,
		LocationID:    location.ID,
	}
	transactionID, err := s.transactionRepo.CreateTransaction(tx, &transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction record: %w", err)
	}

	for _, item := range req.Items {
		product, err := s.productRepo.GetProductBySKU(tx, item.SKU)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				utils.LogWarn("Webhook: product not found, skipping stock deduction", map[string]interface{}{
					"sku":      item.SKU,
					"order_id": req.OrderID,
				})
				continue
			}
			return nil, fmt.Errorf("failed to fetch product by SKU %s: %w", item.SKU, err)
		}

		// No non-negative check here: online orders may oversell.
		if _, err := s.inventoryRepo.AdjustQuantity(tx, product.ID, location.ID, -item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to deduct stock for SKU %s: %w", item.SKU, err)
		}

		lineItem := models.TransactionItem{
			TransactionID: transactionID,
			ProductID:     product.ID,
			Quantity:      item.Quantity,
			Price:         item.Price,
		}
		if _, err := s.transactionRepo.CreateTransactionItem(tx, &lineItem); err != nil {
			return nil, fmt.Errorf("failed to create transaction item for SKU %s: %w", item.SKU, err)
		}

		movement := models.StockMovement{
			ProductID:      product.ID,
			FromLocationID: &location.ID,
			Quantity:       item.Quantity,
			Reason:         fmt.Sprintf("Online Order #%s (%s)", req.OrderID, source),
		}
		if _, err := s.inventoryRepo.CreateMovement(tx, &movement); err != nil {
			return nil, fmt.Errorf("failed to record stock movement for SKU %s: %w", item.SKU, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit webhook transaction: %w", err)
	}

	return &WebhookOrderResponse{TransactionID: transactionID, InvoiceNumber: transaction.InvoiceNumber}, nil
}

// resolveFulfillmentLocation picks the explicit location when given,
// otherwise the default fulfillment site (first warehouse, then first
// location, lowest id first).
func (s *webhookService) resolveFulfillmentLocation(locationID *int64) (*models.Location, error) {
	if locationID != nil {
		location, err := s.locationRepo.GetLocationByID(*locationID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: location ID %d", ErrLocationNotFound, *locationID)
			}
			return nil, fmt.Errorf("failed to fetch location %d: %w", *locationID, err)
		}
		return location, nil
	}

	location, err := s.locationRepo.FindFulfillmentLocation(s.db)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoFulfillmentLocation
		}
		return nil, fmt.Errorf("failed to find fulfillment location: %w", err)
	}
	return location, nil
}

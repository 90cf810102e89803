package services

import (
	"strings"
	"testing"

	"holdup_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessOrder_Success(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := &fakeProductRepo{products: []models.Product{
		{ID: 1, SKU: "SKU-1", Name: "Keyboard", SellingPrice: 50},
		{ID: 2, SKU: "SKU-2", Name: "Mouse", SellingPrice: 20},
	}}
	inventoryRepo := newFakeInventoryRepo()
	inventoryRepo.setQuantity(1, 5, 10)
	inventoryRepo.setQuantity(2, 5, 10)
	locationRepo := &fakeLocationRepo{locations: []models.Location{
		{ID: 3, Name: "Downtown Store", Type: models.LocationTypeStore},
		{ID: 5, Name: "Central Warehouse", Type: models.LocationTypeWarehouse},
	}}
	transactionRepo := &fakeTransactionRepo{}

	svc := NewWebhookService(transactionRepo, productRepo, inventoryRepo, locationRepo, db)

	resp, err := svc.ProcessOrder(WebhookOrderRequest{
		OrderID: "ORD-1001",
		Source:  "SHOPIFY",
		Items: []WebhookOrderItem{
			{SKU: "SKU-1", Quantity: 2, Price: 55},
			{SKU: "SKU-2", Quantity: 1, Price: 25},
		},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.InvoiceNumber, "WEB-SHOPIFY-ORD-1001-"))

	// Fulfilled from the warehouse, not the store.
	require.Len(t, transactionRepo.transactions, 1)
	transaction := transactionRepo.transactions[0]
	assert.Equal(t, int64(5), transaction.LocationID)
	assert.Equal(t, "SHOPIFY", transaction.Source)
	assert.Equal(t, "ONLINE", transaction.PaymentMethod)
	// Total is recomputed from the payload lines.
	assert.Equal(t, 135.0, transaction.TotalAmount)

	assert.Equal(t, 8, inventoryRepo.quantities[invKey{1, 5}])
	assert.Equal(t, 9, inventoryRepo.quantities[invKey{2, 5}])
	require.Len(t, inventoryRepo.movements, 2)
	assert.Equal(t, "Online Order #ORD-1001 (SHOPIFY)", inventoryRepo.movements[0].Reason)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessOrder_UnknownSKUSkipped(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := &fakeProductRepo{products: []models.Product{
		{ID: 1, SKU: "SKU-1", Name: "Keyboard"},
	}}
	inventoryRepo := newFakeInventoryRepo()
	inventoryRepo.setQuantity(1, 5, 10)
	locationRepo := &fakeLocationRepo{locations: []models.Location{
		{ID: 5, Name: "Central Warehouse", Type: models.LocationTypeWarehouse},
	}}
	transactionRepo := &fakeTransactionRepo{}

	svc := NewWebhookService(transactionRepo, productRepo, inventoryRepo, locationRepo, db)

	_, err := svc.ProcessOrder(WebhookOrderRequest{
		OrderID: "ORD-2",
		Items: []WebhookOrderItem{
			{SKU: "SKU-1", Quantity: 1, Price: 50},
			{SKU: "NO-SUCH-SKU", Quantity: 3, Price: 10},
		},
	})
	require.NoError(t, err)

	// The unknown line is dropped but the rest of the order commits,
	// and the skipped line still counts toward the stated total.
	require.Len(t, transactionRepo.items, 1)
	assert.Equal(t, int64(1), transactionRepo.items[0].ProductID)
	assert.Equal(t, 80.0, transactionRepo.transactions[0].TotalAmount)
	require.Len(t, inventoryRepo.movements, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessOrder_AllowsNegativeStock(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := &fakeProductRepo{products: []models.Product{
		{ID: 1, SKU: "SKU-1", Name: "Keyboard"},
	}}
	inventoryRepo := newFakeInventoryRepo()
	inventoryRepo.setQuantity(1, 5, 1)
	locationRepo := &fakeLocationRepo{locations: []models.Location{
		{ID: 5, Name: "Central Warehouse", Type: models.LocationTypeWarehouse},
	}}

	svc := NewWebhookService(&fakeTransactionRepo{}, productRepo, inventoryRepo, locationRepo, db)

	_, err := svc.ProcessOrder(WebhookOrderRequest{
		OrderID: "ORD-3",
		Items:   []WebhookOrderItem{{SKU: "SKU-1", Quantity: 4, Price: 50}},
	})
	require.NoError(t, err)

	// Overselling is allowed on this path so the backlog stays visible.
	assert.Equal(t, -3, inventoryRepo.quantities[invKey{1, 5}])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessOrder_DefaultSource(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := &fakeProductRepo{products: []models.Product{{ID: 1, SKU: "SKU-1"}}}
	inventoryRepo := newFakeInventoryRepo()
	locationRepo := &fakeLocationRepo{locations: []models.Location{
		{ID: 2, Name: "Shop", Type: models.LocationTypeStore},
	}}
	transactionRepo := &fakeTransactionRepo{}

	svc := NewWebhookService(transactionRepo, productRepo, inventoryRepo, locationRepo, db)

	_, err := svc.ProcessOrder(WebhookOrderRequest{
		OrderID: "ORD-4",
		Items:   []WebhookOrderItem{{SKU: "SKU-1", Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSourceOnlineStore, transactionRepo.transactions[0].Source)
	// No warehouse configured: falls back to the first location.
	assert.Equal(t, int64(2), transactionRepo.transactions[0].LocationID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessOrder_ExplicitLocation(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := &fakeProductRepo{products: []models.Product{{ID: 1, SKU: "SKU-1"}}}
	inventoryRepo := newFakeInventoryRepo()
	locationRepo := &fakeLocationRepo{locations: []models.Location{
		{ID: 2, Name: "Shop", Type: models.LocationTypeStore},
		{ID: 5, Name: "Central Warehouse", Type: models.LocationTypeWarehouse},
	}}
	transactionRepo := &fakeTransactionRepo{}

	svc := NewWebhookService(transactionRepo, productRepo, inventoryRepo, locationRepo, db)

	_, err := svc.ProcessOrder(WebhookOrderRequest{
		OrderID:    "ORD-5",
		Items:      []WebhookOrderItem{{SKU: "SKU-1", Quantity: 1, Price: 10}},
		LocationID: int64Ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), transactionRepo.transactions[0].LocationID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessOrder_UnknownExplicitLocation(t *testing.T) {
	db, _ := newMockDB(t)

	svc := NewWebhookService(&fakeTransactionRepo{}, &fakeProductRepo{}, newFakeInventoryRepo(), &fakeLocationRepo{}, db)

	_, err := svc.ProcessOrder(WebhookOrderRequest{
		OrderID:    "ORD-6",
		Items:      []WebhookOrderItem{{SKU: "SKU-1", Quantity: 1}},
		LocationID: int64Ptr(42),
	})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestProcessOrder_NoLocationsConfigured(t *testing.T) {
	db, _ := newMockDB(t)

	svc := NewWebhookService(&fakeTransactionRepo{}, &fakeProductRepo{}, newFakeInventoryRepo(), &fakeLocationRepo{}, db)

	_, err := svc.ProcessOrder(WebhookOrderRequest{
		OrderID: "ORD-7",
		Items:   []WebhookOrderItem{{SKU: "SKU-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrNoFulfillmentLocation)
}

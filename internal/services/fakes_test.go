package services

import (
	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"
)

// In-memory repository fakes used across the service tests. They keep just
// enough state to observe what a service wrote, and expose function hooks to
// force errors per call.

type invKey struct {
	productID  int64
	locationID int64
}

type fakeInventoryRepo struct {
	quantities map[invKey]int
	movements  []models.StockMovement

	getQuantityErr    error
	adjustQuantityErr error
	decrementErr      error
	createMovementErr error
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{quantities: map[invKey]int{}}
}

func (f *fakeInventoryRepo) setQuantity(productID, locationID int64, qty int) {
	f.quantities[invKey{productID, locationID}] = qty
}

func (f *fakeInventoryRepo) GetQuantity(_ repositories.SQLExecutor, productID, locationID int64) (int, error) {
	if f.getQuantityErr != nil {
		return 0, f.getQuantityErr
	}
	qty, ok := f.quantities[invKey{productID, locationID}]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	return qty, nil
}

func (f *fakeInventoryRepo) AdjustQuantity(_ repositories.SQLExecutor, productID, locationID int64, delta int) (*models.Inventory, error) {
	if f.adjustQuantityErr != nil {
		return nil, f.adjustQuantityErr
	}
	key := invKey{productID, locationID}
	f.quantities[key] += delta
	return &models.Inventory{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   f.quantities[key],
	}, nil
}

func (f *fakeInventoryRepo) DecrementExisting(_ repositories.SQLExecutor, productID, locationID int64, quantity int) (*models.Inventory, error) {
	if f.decrementErr != nil {
		return nil, f.decrementErr
	}
	key := invKey{productID, locationID}
	if _, ok := f.quantities[key]; !ok {
		return nil, repositories.ErrNotFound
	}
	f.quantities[key] -= quantity
	return &models.Inventory{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   f.quantities[key],
	}, nil
}

func (f *fakeInventoryRepo) CreateMovement(_ repositories.SQLExecutor, movement *models.StockMovement) (int64, error) {
	if f.createMovementErr != nil {
		return 0, f.createMovementErr
	}
	f.movements = append(f.movements, *movement)
	return int64(len(f.movements)), nil
}

type fakeTransactionRepo struct {
	transactions []models.Transaction
	items        []models.TransactionItem

	createTransactionErr error
	createItemErr        error
}

func (f *fakeTransactionRepo) CreateTransaction(_ repositories.SQLExecutor, transaction *models.Transaction) (int64, error) {
	if f.createTransactionErr != nil {
		return 0, f.createTransactionErr
	}
	f.transactions = append(f.transactions, *transaction)
	id := int64(len(f.transactions))
	transaction.ID = id
	return id, nil
}

func (f *fakeTransactionRepo) CreateTransactionItem(_ repositories.SQLExecutor, item *models.TransactionItem) (int64, error) {
	if f.createItemErr != nil {
		return 0, f.createItemErr
	}
	f.items = append(f.items, *item)
	return int64(len(f.items)), nil
}

func (f *fakeTransactionRepo) GetTransactionByID(transactionID int64) (*models.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == transactionID {
			return &t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeProductRepo struct {
	products []models.Product

	createErr       error
	updateStatusErr error
}

func (f *fakeProductRepo) CreateProduct(_ repositories.SQLExecutor, product *models.Product) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, p := range f.products {
		if p.SKU == product.SKU {
			return 0, repositories.ErrDuplicateKey
		}
	}
	product.ID = int64(len(f.products) + 1)
	f.products = append(f.products, *product)
	return product.ID, nil
}

func (f *fakeProductRepo) GetProductByID(_ repositories.SQLExecutor, id int64) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductRepo) GetProductBySKU(_ repositories.SQLExecutor, sku string) (*models.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductRepo) GetProducts() ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) UpdateProductStatus(_ repositories.SQLExecutor, id int64, status string) (*models.Product, error) {
	if f.updateStatusErr != nil {
		return nil, f.updateStatusErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Status = status
			return &f.products[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductRepo) GetLowStockProducts(threshold int) ([]models.LowStockAlert, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customers []models.Customer

	createErr error
	listErr   error
}

func (f *fakeCustomerRepo) CreateCustomer(_ repositories.SQLExecutor, customer *models.Customer) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	customer.ID = int64(len(f.customers) + 1)
	f.customers = append(f.customers, *customer)
	return customer.ID, nil
}

func (f *fakeCustomerRepo) GetCustomerByID(id int64) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCustomerRepo) GetCustomers() ([]models.Customer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.customers, nil
}

type fakeLocationRepo struct {
	locations []models.Location
}

func (f *fakeLocationRepo) CreateLocation(_ repositories.SQLExecutor, location *models.Location) (int64, error) {
	location.ID = int64(len(f.locations) + 1)
	f.locations = append(f.locations, *location)
	return location.ID, nil
}

func (f *fakeLocationRepo) GetLocationByID(id int64) (*models.Location, error) {
	for _, l := range f.locations {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeLocationRepo) GetLocations() ([]models.Location, error) {
	return f.locations, nil
}

func (f *fakeLocationRepo) FindFulfillmentLocation(_ repositories.SQLExecutor) (*models.Location, error) {
	for _, l := range f.locations {
		if l.Type == models.LocationTypeWarehouse {
			return &l, nil
		}
	}
	if len(f.locations) > 0 {
		return &f.locations[0], nil
	}
	return nil, repositories.ErrNotFound
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holdup_backend/internal/models"

	"github.com/lib/pq"
)

// ProductRepository defines the interface for product catalog database operations.
type ProductRepository interface {
	CreateProduct(executor SQLExecutor, product *models.Product) (int64, error)
	GetProductByID(executor SQLExecutor, id int64) (*models.Product, error)
	GetProductBySKU(executor SQLExecutor, sku string) (*models.Product, error)
	GetProducts() ([]models.Product, error)
	UpdateProductStatus(executor SQLExecutor, id int64, status string) (*models.Product, error)
	GetLowStockProducts(threshold int) ([]models.LowStockAlert, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(executor SQLExecutor, product *models.Product) (int64, error) {
	query := `INSERT INTO products
	            (sku, name, barcode, image_url, category, cost_price, selling_price,
	             tax_pct, reorder_level, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id`
	currentTime := time.Now()
	if product.Status == "" {
		product.Status = models.ProductStatusPending
	}
	err := executor.QueryRow(query,
		product.SKU, product.Name, product.Barcode, product.ImageURL, product.Category,
		product.CostPrice, product.SellingPrice, product.TaxPct, product.ReorderLevel,
		product.Status, currentTime, currentTime,
	).Scan(&product.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: product SKU '%s' already exists (constraint: %s)", ErrDuplicateKey, product.SKU, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating product: %v", ErrDatabaseError, err)
	}
	return product.ID, nil
}

const productColumns = `id, sku, name, barcode, image_url, category, cost_price,
	selling_price, tax_pct, reorder_level, status, created_at, updated_at`

func scanProduct(row *sql.Row, p *models.Product) error {
	return row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Barcode, &p.ImageURL, &p.Category, &p.CostPrice,
		&p.SellingPrice, &p.TaxPct, &p.ReorderLevel, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *productRepository) GetProductByID(executor SQLExecutor, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := scanProduct(executor.QueryRow(query, id), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by ID %d: %v", ErrDatabaseError, id, err)
	}
	return product, nil
}

func (r *productRepository) GetProductBySKU(executor SQLExecutor, sku string) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	err := scanProduct(executor.QueryRow(query, sku), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by SKU '%s': %v", ErrDatabaseError, sku, err)
	}
	return product, nil
}

// GetProducts lists the catalog newest-first with per-location inventory joined.
func (r *productRepository) GetProducts() ([]models.Product, error) {
	query := `SELECT p.id, p.sku, p.name, p.barcode, p.image_url, p.category, p.cost_price,
	                 p.selling_price, p.tax_pct, p.reorder_level, p.status, p.created_at, p.updated_at,
	                 i.id, i.location_id, i.quantity,
	                 l.name, l.type
	          FROM products p
	          LEFT JOIN inventory i ON i.product_id = p.id
	          LEFT JOIN locations l ON l.id = i.location_id
	          ORDER BY p.created_at DESC, p.id DESC, i.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	products := []models.Product{}
	index := map[int64]int{}
	for rows.Next() {
		var p models.Product
		var invID, invLocationID sql.NullInt64
		var invQuantity sql.NullInt64
		var locName, locType sql.NullString

		err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Barcode, &p.ImageURL, &p.Category, &p.CostPrice,
			&p.SellingPrice, &p.TaxPct, &p.ReorderLevel, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&invID, &invLocationID, &invQuantity,
			&locName, &locType,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}

		pos, seen := index[p.ID]
		if !seen {
			products = append(products, p)
			pos = len(products) - 1
			index[p.ID] = pos
		}
		if invID.Valid {
			inv := models.Inventory{
				ID:         invID.Int64,
				ProductID:  p.ID,
				LocationID: invLocationID.Int64,
				Quantity:   int(invQuantity.Int64),
			}
			if locName.Valid {
				inv.Location = &models.Location{ID: invLocationID.Int64, Name: locName.String, Type: locType.String}
			}
			products[pos].Inventory = append(products[pos].Inventory, inv)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

func (r *productRepository) UpdateProductStatus(executor SQLExecutor, id int64, status string) (*models.Product, error) {
	product := &models.Product{}
	query := `UPDATE products SET status = $1, updated_at = $2 WHERE id = $3
	          RETURNING ` + productColumns
	err := scanProduct(executor.QueryRow(query, status, time.Now(), id), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating status for product ID %d: %v", ErrDatabaseError, id, err)
	}
	return product, nil
}

// GetLowStockProducts returns products whose summed inventory is at or below
// the given fixed threshold, ascending by total stock.
func (r *productRepository) GetLowStockProducts(threshold int) ([]models.LowStockAlert, error) {
	query := `SELECT p.id, p.sku, p.name, p.barcode, p.image_url, p.category, p.cost_price,
	                 p.selling_price, p.tax_pct, p.reorder_level, p.status, p.created_at, p.updated_at,
	                 COALESCE(SUM(i.quantity), 0) AS total_stock
	          FROM products p
	          LEFT JOIN inventory i ON i.product_id = p.id
	          GROUP BY p.id
	          HAVING COALESCE(SUM(i.quantity), 0) <= $1
	          ORDER BY total_stock ASC, p.id`
	rows, err := r.db.Query(query, threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: querying low stock products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	alerts := []models.LowStockAlert{}
	for rows.Next() {
		var a models.LowStockAlert
		err := rows.Scan(
			&a.ID, &a.SKU, &a.Name, &a.Barcode, &a.ImageURL, &a.Category, &a.CostPrice,
			&a.SellingPrice, &a.TaxPct, &a.ReorderLevel, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.TotalStock,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning low stock product: %v", ErrDatabaseError, err)
		}
		alerts = append(alerts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating low stock rows: %v", ErrDatabaseError, err)
	}
	return alerts, nil
}

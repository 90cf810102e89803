package repositories

import (
	"database/sql"
	"fmt"

	"holdup_backend/internal/models"
)

// ReportRepository defines the read-only aggregation queries behind the
// reporting endpoints. No invariants to maintain here beyond query
// correctness.
type ReportRepository interface {
	GetAnalyticsSummary(locationID *int64) (*models.AnalyticsSummary, error)
	// GetReorderAlerts returns products whose summed inventory across all
	// locations is at or below their own reorder level.
	GetReorderAlerts() ([]models.LowStockAlert, error)
	// GetCatalogPricing returns every product's pricing fields for margin
	// computation in the service layer.
	GetCatalogPricing() ([]models.Product, error)
	// GetDeadStockRows returns products holding stock with zero historical
	// transaction items, with their total stock attached.
	GetDeadStockRows() ([]models.DeadStockEntry, error)
}

type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetAnalyticsSummary(locationID *int64) (*models.AnalyticsSummary, error) {
	summary := &models.AnalyticsSummary{}
	query := `SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
	          FROM transactions
	          WHERE status = $1 AND ($2::bigint IS NULL OR location_id = $2)`
	err := r.db.QueryRow(query, models.TransactionStatusCompleted, locationID).Scan(&summary.TotalRevenue, &summary.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregating analytics summary: %v", ErrDatabaseError, err)
	}
	return summary, nil
}

func (r *reportRepository) GetReorderAlerts() ([]models.LowStockAlert, error) {
	query := `SELECT p.id, p.sku, p.name, p.barcode, p.image_url, p.category, p.cost_price,
	                 p.selling_price, p.tax_pct, p.reorder_level, p.status, p.created_at, p.updated_at,
	                 COALESCE(SUM(i.quantity), 0) AS total_stock
	          FROM products p
	          LEFT JOIN inventory i ON i.product_id = p.id
	          GROUP BY p.id
	          HAVING COALESCE(SUM(i.quantity), 0) <= p.reorder_level
	          ORDER BY total_stock ASC, p.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying reorder alerts: %v", ErrDatabaseError, err)
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
			return nil, fmt.Errorf("%w: scanning reorder alert: %v", ErrDatabaseError, err)
		}
		alerts = append(alerts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating reorder alert rows: %v", ErrDatabaseError, err)
	}
	return alerts, nil
}

func (r *reportRepository) GetCatalogPricing() ([]models.Product, error) {
	query := `SELECT id, sku, name, barcode, image_url, category, cost_price,
	                 selling_price, tax_pct, reorder_level, status, created_at, updated_at
	          FROM products`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying catalog pricing: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Barcode, &p.ImageURL, &p.Category, &p.CostPrice,
			&p.SellingPrice, &p.TaxPct, &p.ReorderLevel, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning product pricing: %v", ErrDatabaseError, err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating catalog pricing rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

func (r *reportRepository) GetDeadStockRows() ([]models.DeadStockEntry, error) {
	query := `SELECT p.id, p.sku, p.name, p.barcode, p.image_url, p.category, p.cost_price,
	                 p.selling_price, p.tax_pct, p.reorder_level, p.status, p.created_at, p.updated_at,
	                 COALESCE(SUM(i.quantity), 0) AS total_stock
	          FROM products p
	          LEFT JOIN inventory i ON i.product_id = p.id
	          WHERE NOT EXISTS (SELECT 1 FROM transaction_items ti WHERE ti.product_id = p.id)
	          GROUP BY p.id
	          HAVING COALESCE(SUM(i.quantity), 0) > 0`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying dead stock: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	entries := []models.DeadStockEntry{}
	for rows.Next() {
		var e models.DeadStockEntry
		err := rows.Scan(
			&e.ID, &e.SKU, &e.Name, &e.Barcode, &e.ImageURL, &e.Category, &e.CostPrice,
			&e.SellingPrice, &e.TaxPct, &e.ReorderLevel, &e.Status, &e.CreatedAt, &e.UpdatedAt,
			&e.TotalStock,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning dead stock row: %v", ErrDatabaseError, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating dead stock rows: %v", ErrDatabaseError, err)
	}
	return entries, nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holdup_backend/internal/models"

	"github.com/lib/pq"
)

// TransactionRepository defines the interface for sales transaction database
// operations. Transactions and their items are insert-only.
type TransactionRepository interface {
	CreateTransaction(executor SQLExecutor, transaction *models.Transaction) (int64, error)
	CreateTransactionItem(executor SQLExecutor, item *models.TransactionItem) (int64, error)
	GetTransactionByID(transactionID int64) (*models.Transaction, error)
}

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CreateTransaction(executor SQLExecutor, transaction *models.Transaction) (int64, error) {
	query := `INSERT INTO transactions
	            (invoice_number, total_amount, payment_method, status, source, location_id, customer_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	err := executor.QueryRow(query,
		transaction.InvoiceNumber, transaction.TotalAmount, transaction.PaymentMethod,
		transaction.Status, transaction.Source, transaction.LocationID, transaction.CustomerID,
		transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: invoice number '%s' already exists (constraint: %s)", ErrDuplicateKey, transaction.InvoiceNumber, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating transaction: %v", ErrDatabaseError, err)
	}
	return transaction.ID, nil
}

func (r *transactionRepository) CreateTransactionItem(executor SQLExecutor, item *models.TransactionItem) (int64, error) {
	query := `INSERT INTO transaction_items (transaction_id, product_id, quantity, price)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := executor.QueryRow(query, item.TransactionID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, fmt.Errorf("%w: creating transaction item (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return 0, fmt.Errorf("%w: creating transaction item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *transactionRepository) GetTransactionByID(transactionID int64) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	query := `SELECT id, invoice_number, total_amount, payment_method, status, source,
	                 location_id, customer_id, created_at
	          FROM transactions
	          WHERE id = $1`
	err := r.db.QueryRow(query, transactionID).Scan(
		&transaction.ID, &transaction.InvoiceNumber, &transaction.TotalAmount,
		&transaction.PaymentMethod, &transaction.Status, &transaction.Source,
		&transaction.LocationID, &transaction.CustomerID, &transaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting transaction by ID %d: %v", ErrDatabaseError, transactionID, err)
	}

	itemsQuery := `SELECT ti.id, ti.transaction_id, ti.product_id, ti.quantity, ti.price,
	                      p.sku, p.name
	               FROM transaction_items ti
	               JOIN products p ON ti.product_id = p.id
	               WHERE ti.transaction_id = $1
	               ORDER BY ti.id`
	rows, err := r.db.Query(itemsQuery, transactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying transaction items for ID %d: %v", ErrDatabaseError, transactionID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.TransactionItem
		product := &models.Product{}
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.Quantity, &item.Price, &product.SKU, &product.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning transaction item: %v", ErrDatabaseError, err)
		}
		product.ID = item.ProductID
		item.Product = product
		transaction.Items = append(transaction.Items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating transaction item rows: %v", ErrDatabaseError, err)
	}
	return transaction, nil
}

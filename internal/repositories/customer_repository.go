package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holdup_backend/internal/models"

	"github.com/lib/pq"
)

// CustomerRepository defines the interface for customer database operations.
type CustomerRepository interface {
	CreateCustomer(executor SQLExecutor, customer *models.Customer) (int64, error)
	GetCustomerByID(id int64) (*models.Customer, error)
	// GetCustomers lists customers with lifetime value derived from their
	// completed transactions.
	GetCustomers() ([]models.Customer, error)
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) CreateCustomer(executor SQLExecutor, customer *models.Customer) (int64, error) {
	query := `INSERT INTO customers (name, email, phone, loyalty_points, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $5)
	          RETURNING id`
	err := executor.QueryRow(query,
		customer.Name, customer.Email, customer.Phone, customer.LoyaltyPoints, time.Now(),
	).Scan(&customer.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: customer email already exists (constraint: %s)", ErrDuplicateKey, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating customer: %v", ErrDatabaseError, err)
	}
	return customer.ID, nil
}

func (r *customerRepository) GetCustomerByID(id int64) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `SELECT id, name, email, phone, loyalty_points, created_at, updated_at
	          FROM customers WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
		&customer.LoyaltyPoints, &customer.CreatedAt, &customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting customer by ID %d: %v", ErrDatabaseError, id, err)
	}
	return customer, nil
}

func (r *customerRepository) GetCustomers() ([]models.Customer, error) {
	customers := []models.Customer{}
	query := `SELECT c.id, c.name, c.email, c.phone, c.loyalty_points, c.created_at, c.updated_at,
	                 COALESCE(SUM(t.total_amount) FILTER (WHERE t.status = $1), 0) AS lifetime_value
	          FROM customers c
	          LEFT JOIN transactions t ON t.customer_id = c.id
	          GROUP BY c.id
	          ORDER BY c.created_at DESC, c.id DESC`
	rows, err := r.db.Query(query, models.TransactionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("%w: querying customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.LoyaltyPoints, &c.CreatedAt, &c.UpdatedAt, &c.LifetimeValue); err != nil {
			return nil, fmt.Errorf("%w: scanning customer: %v", ErrDatabaseError, err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating customer rows: %v", ErrDatabaseError, err)
	}
	return customers, nil
}

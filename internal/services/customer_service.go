package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"
	"holdup_backend/pkg/utils"
)

// CreateCustomerRequest is the customer creation payload. Email and phone are
// optional; blank values are stored as NULL.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// --- CustomerService Interface ---

type CustomerService interface {
	CreateCustomer(req CreateCustomerRequest) (*models.Customer, error)
	GetCustomers() ([]models.Customer, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
	db           *sql.DB
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(cr repositories.CustomerRepository, db *sql.DB) CustomerService {
	return &customerService{customerRepo: cr, db: db}
}

func (s *customerService) CreateCustomer(req CreateCustomerRequest) (*models.Customer, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}

	customer := &models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Email: models.NewNullString(req.Email),
		Phone: models.NewNullString(req.Phone),
	}
	if _, err := s.customerRepo.CreateCustomer(s.db, customer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: customer email already exists", ErrValidation)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) GetCustomers() ([]models.Customer, error) {
	customers, err := s.customerRepo.GetCustomers()
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

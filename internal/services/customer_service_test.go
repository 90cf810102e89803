package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdup_backend/internal/repositories"
)

func TestCreateCustomer(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo, nil)

	customer, err := svc.CreateCustomer(CreateCustomerRequest{
		Name:  "  Jane Doe  ",
		Email: "jane@example.com",
		Phone: "555-0100",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", customer.Name)
	require.NotNil(t, customer.Email)
	assert.Equal(t, "jane@example.com", *customer.Email)
	require.NotNil(t, customer.Phone)
	assert.Equal(t, "555-0100", *customer.Phone)
}

func TestCreateCustomer_BlankOptionalFieldsStoredAsNull(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo, nil)

	customer, err := svc.CreateCustomer(CreateCustomerRequest{Name: "Walk-in"})

	require.NoError(t, err)
	assert.Nil(t, customer.Email)
	assert.Nil(t, customer.Phone)
}

func TestCreateCustomer_NameRequired(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo, nil)

	_, err := svc.CreateCustomer(CreateCustomerRequest{Name: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.customers)
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	repo := &fakeCustomerRepo{createErr: repositories.ErrDuplicateKey}
	svc := NewCustomerService(repo, nil)

	_, err := svc.CreateCustomer(CreateCustomerRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetCustomers(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo, nil)

	_, err := svc.CreateCustomer(CreateCustomerRequest{Name: "Jane Doe"})
	require.NoError(t, err)

	customers, err := svc.GetCustomers()
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestGetCustomers_RepoError(t *testing.T) {
	repo := &fakeCustomerRepo{listErr: errors.New("connection reset")}
	svc := NewCustomerService(repo, nil)

	_, err := svc.GetCustomers()
	require.Error(t, err)
}

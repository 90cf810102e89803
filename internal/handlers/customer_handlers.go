package handlers

import (
	"errors"
	"net/http"

	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler holds the customer service.
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// GetCustomers lists customers with derived lifetime value.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.customerService.GetCustomers()
	if err != nil {
		utils.LogError(err, "GetCustomers: Error from customerService.GetCustomers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customers.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CreateCustomer creates a customer record.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCustomer: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	customer, err := h.customerService.CreateCustomer(req)
	if err != nil {
		utils.LogError(err, "CreateCustomer: Error from customerService.CreateCustomer")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer payload.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create customer.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, customer)
}

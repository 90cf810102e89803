package handlers

import (
	"errors"
	"net/http"

	"holdup_backend/internal/middleware"
	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler holds the checkout service.
type CheckoutHandler struct {
	checkoutService services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(cs services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: cs}
}

// Checkout handles a POS cart checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Checkout: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	actor := middleware.AuthContextFromGin(c)
	result, err := h.checkoutService.Checkout(actor, req)
	if err != nil {
		utils.LogError(err, "Checkout: Error from checkoutService.Checkout")
		switch {
		case errors.Is(err, services.ErrInsufficientStock):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeInsufficientStock, "Insufficient stock for one or more items.", err.Error()))
		case errors.Is(err, services.ErrProductNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "One or more cart products do not exist.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing required checkout fields.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal server error during checkout.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

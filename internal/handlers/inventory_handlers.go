package handlers

import (
	"errors"
	"net/http"

	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// AdjustStock applies a signed manual stock adjustment at one location.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req services.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AdjustStock: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	inventory, err := h.inventoryService.AdjustStock(req)
	if err != nil {
		utils.LogError(err, "AdjustStock: Error from inventoryService.AdjustStock")
		switch {
		case errors.Is(err, services.ErrInsufficientStock):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeInsufficientStock, "Insufficient stock for this adjustment.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid adjustment payload.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to adjust stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, inventory)
}

// TransferStock moves quantity between two locations.
func (h *InventoryHandler) TransferStock(c *gin.Context) {
	var req services.TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "TransferStock: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid transfer payload.", err.Error()))
		return
	}

	result, err := h.inventoryService.TransferStock(req)
	if err != nil {
		utils.LogError(err, "TransferStock: Error from inventoryService.TransferStock")
		switch {
		case errors.Is(err, services.ErrSameLocation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Source and destination locations cannot be the same.", err.Error()))
		case errors.Is(err, services.ErrSourceInventoryMissing):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "No inventory record found at source location.", err.Error()))
		case errors.Is(err, services.ErrInsufficientStock):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeInsufficientStock, "Insufficient stock at source location.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid transfer payload.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to transfer stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

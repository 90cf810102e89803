package handlers

import (
	"errors"
	"net/http"

	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// WebhookHandler holds the webhook service.
type WebhookHandler struct {
	webhookService services.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(ws services.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookService: ws}
}

// ProcessOrder handles an externally triggered e-commerce fulfillment event.
// Authentication happens in WebhookAuthMiddleware before this runs.
func (h *WebhookHandler) ProcessOrder(c *gin.Context) {
	var req services.WebhookOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ProcessOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid webhook payload format.", err.Error()))
		return
	}

	result, err := h.webhookService.ProcessOrder(req)
	if err != nil {
		utils.LogError(err, "ProcessOrder: Error from webhookService.ProcessOrder")
		switch {
		case errors.Is(err, services.ErrLocationNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Fulfillment location does not exist.", err.Error()))
		case errors.Is(err, services.ErrNoFulfillmentLocation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "No locations available for fulfillment.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid webhook payload format.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process webhook order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Webhook processed successfully", "transaction_id": result.TransactionID})
}

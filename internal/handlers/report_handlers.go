package handlers

import (
	"net/http"

	"holdup_backend/internal/middleware"
	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetAnalytics returns the sales summary, optionally scoped to one location
// via ?location_id=. Location-bound users are always scoped to their own.
func (h *ReportHandler) GetAnalytics(c *gin.Context) {
	actor := middleware.AuthContextFromGin(c)

	var locationID *int64
	if raw := c.Query("location_id"); raw != "" {
		id, err := utils.StrToInt64(raw)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid location_id parameter.", err.Error()))
			return
		}
		locationID = &id
	}

	summary, err := h.reportService.GetAnalytics(actor, locationID)
	if err != nil {
		utils.LogError(err, "GetAnalytics: Error from reportService.GetAnalytics")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to aggregate analytics.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetReorderAlerts lists products at or below their reorder level.
func (h *ReportHandler) GetReorderAlerts(c *gin.Context) {
	alerts, err := h.reportService.GetReorderAlerts()
	if err != nil {
		utils.LogError(err, "GetReorderAlerts: Error from reportService.GetReorderAlerts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reorder alerts.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// GetProfitMargins lists products sorted by margin percentage.
func (h *ReportHandler) GetProfitMargins(c *gin.Context) {
	entries, err := h.reportService.GetProfitMargins()
	if err != nil {
		utils.LogError(err, "GetProfitMargins: Error from reportService.GetProfitMargins")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute profit margins.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetDeadStock lists unsold products by capital held in stock.
func (h *ReportHandler) GetDeadStock(c *gin.Context) {
	entries, err := h.reportService.GetDeadStock()
	if err != nil {
		utils.LogError(err, "GetDeadStock: Error from reportService.GetDeadStock")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dead stock.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, entries)
}

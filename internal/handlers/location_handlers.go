package handlers

import (
	"errors"
	"net/http"

	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LocationHandler holds the location service.
type LocationHandler struct {
	locationService services.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(ls services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: ls}
}

// GetLocations lists all locations ordered by name.
func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.locationService.GetLocations()
	if err != nil {
		utils.LogError(err, "GetLocations: Error from locationService.GetLocations")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch locations.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, locations)
}

// CreateLocation creates a warehouse, store or exhibition site.
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req services.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateLocation: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	location, err := h.locationService.CreateLocation(req)
	if err != nil {
		utils.LogError(err, "CreateLocation: Error from locationService.CreateLocation")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid location payload.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create location.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, location)
}

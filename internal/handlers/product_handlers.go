package handlers

import (
	"errors"
	"net/http"

	"holdup_backend/internal/services"
	"holdup_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler holds the product service.
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ps services.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

// GetProducts lists the catalog with per-location inventory.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts()
	if err != nil {
		utils.LogError(err, "GetProducts: Error from productService.GetProducts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch products.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct creates a new catalog entry in PENDING status.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateProduct: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	product, err := h.productService.CreateProduct(req)
	if err != nil {
		utils.LogError(err, "CreateProduct: Error from productService.CreateProduct")
		switch {
		case errors.Is(err, services.ErrSKUExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeConflict, "Product with this SKU already exists.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing required fields.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create product.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, product)
}

// ImportProducts bulk-creates catalog entries from a JSON list. Failed rows
// are reported back; successful rows are still created.
func (h *ProductHandler) ImportProducts(c *gin.Context) {
	var req services.ImportProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ImportProducts: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid payload or empty list.", err.Error()))
		return
	}

	result, err := h.productService.ImportProducts(req)
	if err != nil {
		utils.LogError(err, "ImportProducts: Error from productService.ImportProducts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to import products.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApproveProduct applies an approval decision to a pending product.
func (h *ProductHandler) ApproveProduct(c *gin.Context) {
	productID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format.", err.Error()))
		return
	}

	var req services.ApproveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ApproveProduct: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	product, err := h.productService.ApproveProduct(productID, req)
	if err != nil {
		utils.LogError(err, "ApproveProduct: Error updating status of product "+utils.Int64ToStr(productID))
		switch {
		case errors.Is(err, services.ErrInvalidProductStatus):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid status.", err.Error()))
		case errors.Is(err, services.ErrProductNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeNotFound, "Product not found.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update product status.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetLowStockProducts lists products at or below the fixed stock threshold.
func (h *ProductHandler) GetLowStockProducts(c *gin.Context) {
	alerts, err := h.productService.GetLowStockProducts()
	if err != nil {
		utils.LogError(err, "GetLowStockProducts: Error from productService.GetLowStockProducts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch low stock products.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, alerts)
}

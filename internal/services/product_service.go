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

// Products with summed stock at or below this fixed threshold appear in the
// direct low-stock listing. The reorder-level report uses each product's own
// threshold instead.
const lowStockThreshold = 10

// --- Data Transfer Objects (DTOs) ---

// CreateProductRequest is the catalog creation payload.
type CreateProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	SKU          string   `json:"sku" binding:"required"`
	Barcode      *string  `json:"barcode"`
	ImageURL     *string  `json:"image_url"`
	Category     string   `json:"category" binding:"required"`
	CostPrice    *float64 `json:"cost_price" binding:"required"`
	SellingPrice *float64 `json:"selling_price" binding:"required"`
	TaxPct       float64  `json:"tax_pct"`
	ReorderLevel int      `json:"reorder_level"`
}

// ImportProductsRequest carries a batch of product rows for bulk creation.
type ImportProductsRequest struct {
	Products []CreateProductRequest `json:"products" binding:"required,min=1,dive"`
}

// ImportProductsResult reports what a bulk import actually did. Rows that
// fail (duplicate SKU, invalid data) are collected; the rest are created.
type ImportProductsResult struct {
	Created []models.Product `json:"created"`
	Errors  []string         `json:"errors,omitempty"`
}

// ApproveProductRequest carries the approval decision.
type ApproveProductRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- ProductService Interface ---

type ProductService interface {
	CreateProduct(req CreateProductRequest) (*models.Product, error)
	ImportProducts(req ImportProductsRequest) (*ImportProductsResult, error)
	ApproveProduct(productID int64, req ApproveProductRequest) (*models.Product, error)
	GetProducts() ([]models.Product, error)
	GetLowStockProducts() ([]models.LowStockAlert, error)
}

type productService struct {
	productRepo repositories.ProductRepository
	db          *sql.DB
}

// NewProductService creates a new instance of ProductService.
func NewProductService(pr repositories.ProductRepository, db *sql.DB) ProductService {
	return &productService{productRepo: pr, db: db}
}

// CreateProduct validates the payload and creates a PENDING catalog entry.
// SKU uniqueness is pre-checked before insert; the unique index still backs
// this up and is classified as the same conflict if the check races.
func (s *productService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	product, err := s.buildProduct(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.productRepo.GetProductBySKU(s.db, product.SKU); err == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrSKUExists, product.SKU)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check SKU uniqueness: %w", err)
	}

	if _, err := s.productRepo.CreateProduct(s.db, product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: '%s'", ErrSKUExists, product.SKU)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// ImportProducts creates products row by row. A failed row is reported and
// skipped; it never aborts the remainder of the batch.
func (s *productService) ImportProducts(req ImportProductsRequest) (*ImportProductsResult, error) {
	result := &ImportProductsResult{Created: []models.Product{}}
	for _, row := range req.Products {
		product, err := s.CreateProduct(row)
		if err != nil {
			sku := row.SKU
			if sku == "" {
				sku = "unknown product"
			}
			result.Errors = append(result.Errors, fmt.Sprintf("failed to import %s: %v", sku, err))
			continue
		}
		result.Created = append(result.Created, *product)
	}
	return result, nil
}

// ApproveProduct applies the approval decision. Only APPROVED and REJECTED
// are accepted; there is no transition back to PENDING.
func (s *productService) ApproveProduct(productID int64, req ApproveProductRequest) (*models.Product, error) {
	if req.Status != models.ProductStatusApproved && req.Status != models.ProductStatusRejected {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProductStatus, req.Status)
	}

	product, err := s.productRepo.UpdateProductStatus(s.db, productID, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts() ([]models.Product, error) {
	products, err := s.productRepo.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

func (s *productService) GetLowStockProducts() ([]models.LowStockAlert, error) {
	alerts, err := s.productRepo.GetLowStockProducts(lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock products: %w", err)
	}
	return alerts, nil
}

func (s *productService) buildProduct(req CreateProductRequest) (*models.Product, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.SKU) || utils.IsEmpty(req.Category) {
		return nil, fmt.Errorf("%w: name, sku and category are required", ErrValidation)
	}
	if req.CostPrice == nil || req.SellingPrice == nil {
		return nil, fmt.Errorf("%w: cost_price and selling_price are required", ErrValidation)
	}
	if *req.CostPrice < 0 || *req.SellingPrice < 0 {
		return nil, fmt.Errorf("%w: prices cannot be negative", ErrValidation)
	}

	reorderLevel := req.ReorderLevel
	if reorderLevel <= 0 {
		reorderLevel = 5
	}
	return &models.Product{
		SKU:          strings.TrimSpace(req.SKU),
		Name:         strings.TrimSpace(req.Name),
		Barcode:      req.Barcode,
		ImageURL:     req.ImageURL,
		Category:     strings.TrimSpace(req.Category),
		CostPrice:    *req.CostPrice,
		SellingPrice: *req.SellingPrice,
		TaxPct:       req.TaxPct,
		ReorderLevel: reorderLevel,
		Status:       models.ProductStatusPending,
	}, nil
}

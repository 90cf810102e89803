package services

import "errors"

// Error kinds shared across services. Handlers map these to HTTP status codes
// with errors.Is; control flow never matches on message text.
var (
	ErrValidation             = errors.New("validation failed")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrProductNotFound        = errors.New("product not found")
	ErrLocationNotFound       = errors.New("location not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrSKUExists              = errors.New("product with this SKU already exists")
	ErrSameLocation           = errors.New("source and destination locations cannot be the same")
	ErrSourceInventoryMissing = errors.New("no inventory record found at source location")
	ErrInvalidProductStatus   = errors.New("invalid product status")
	ErrNoFulfillmentLocation  = errors.New("no locations available for fulfillment")
)

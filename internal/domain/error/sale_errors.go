// Package error defines domain-specific errors for the ShopLedger application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrSaleWithoutLines is returned when creating a sale with no line items.
	ErrSaleWithoutLines = errors.New("sale must contain at least one line item")

	// ErrInvalidPaymentStatus is returned when the payment status is not recognised.
	ErrInvalidPaymentStatus = errors.New("payment status must be: pending or paid")

	// ErrInsufficientStock is returned when a sale line exceeds the item's stock.
	ErrInsufficientStock = errors.New("insufficient stock for item")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	ErrCodeSaleNotFound         SaleErrorCode = "SAL-010001"
	ErrCodeSaleWithoutLines     SaleErrorCode = "SAL-010002"
	ErrCodeInvalidPaymentStatus SaleErrorCode = "SAL-010003"
	ErrCodeInsufficientStock    SaleErrorCode = "SAL-010004"
)

// Package error defines domain-specific errors for the ShopLedger application.
package error

import "errors"

// Purchase domain errors.
var (
	// ErrPurchaseNotFound is returned when a purchase order is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrPurchaseWithoutLines is returned when creating a purchase with no line items.
	ErrPurchaseWithoutLines = errors.New("purchase must contain at least one line item")

	// ErrPurchaseAlreadyReceived is returned when receiving a purchase twice.
	ErrPurchaseAlreadyReceived = errors.New("purchase has already been received")
)

// PurchaseErrorCode defines error codes for purchase errors.
// Format: PUR-XXYYYY where XX is category and YYYY is specific error.
type PurchaseErrorCode string

const (
	ErrCodePurchaseNotFound        PurchaseErrorCode = "PUR-010001"
	ErrCodePurchaseWithoutLines    PurchaseErrorCode = "PUR-010002"
	ErrCodePurchaseAlreadyReceived PurchaseErrorCode = "PUR-010003"
)

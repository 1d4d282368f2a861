// Package error defines domain-specific errors for the ShopLedger application.
package error

import "errors"

// Inventory item domain errors.
var (
	// ErrItemNotFound is returned when an item is not found in the system.
	ErrItemNotFound = errors.New("item not found")

	// ErrSKUAlreadyExists is returned when creating an item with an existing SKU.
	ErrSKUAlreadyExists = errors.New("sku already exists")

	// ErrNegativeStock is returned when a stock adjustment would go below zero.
	ErrNegativeStock = errors.New("stock cannot go below zero")
)

// ItemErrorCode defines error codes for inventory item errors.
// Format: ITM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	ErrCodeItemNotFound     ItemErrorCode = "ITM-010001"
	ErrCodeSKUAlreadyExists ItemErrorCode = "ITM-010002"
	ErrCodeNegativeStock    ItemErrorCode = "ITM-010003"
)

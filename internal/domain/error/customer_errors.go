// Package error defines domain-specific errors for the ShopLedger application.
package error

import "errors"

// Customer domain errors.
var (
	// ErrCustomerNotFound is returned when a customer is not found in the system.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerErrorCode defines error codes for customer errors.
type CustomerErrorCode string

const (
	ErrCodeCustomerNotFound CustomerErrorCode = "CUS-010001"
)

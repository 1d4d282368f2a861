// Package error defines domain-specific errors for the ShopLedger application.
package error

import "errors"

// Bank account domain errors.
var (
	// ErrAccountNotFound is returned when a bank account is not found.
	ErrAccountNotFound = errors.New("bank account not found")

	// ErrInvalidAccountType is returned when the account type is not recognised.
	ErrInvalidAccountType = errors.New("account type must be: checking or savings")
)

// AccountErrorCode defines error codes for bank account errors.
type AccountErrorCode string

const (
	ErrCodeAccountNotFound    AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountType AccountErrorCode = "ACC-010002"
)

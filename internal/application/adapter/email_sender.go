// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// LowStockDigestItem represents one item in a low-stock digest email.
type LowStockDigestItem struct {
	Name     string
	SKU      string
	Supplier string
	Stock    int
	MinStock int
}

// EmailSender defines the interface for outbound email delivery.
type EmailSender interface {
	// SendLowStockDigest sends a digest of items at or below their
	// minimum stock level to the given recipient.
	SendLowStockDigest(ctx context.Context, to string, items []LowStockDigestItem) error
}

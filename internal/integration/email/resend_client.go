// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/shopledger/backend/internal/application/adapter"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendLowStockDigest sends a digest of items at or below their minimum
// stock level to the given recipient.
func (c *ResendClient) SendLowStockDigest(ctx context.Context, to string, items []adapter.LowStockDigestItem) error {
	if len(items) == 0 {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: fmt.Sprintf("Low stock alert: %d item(s) need reordering", len(items)),
		Html:    renderDigestHTML(items),
		Text:    renderDigestText(items),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send low stock digest: %w", err)
	}
	return nil
}

func renderDigestHTML(items []adapter.LowStockDigestItem) string {
	var b strings.Builder
	b.WriteString("<h2>Low stock items</h2>")
	b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\">")
	b.WriteString("<tr><th>Item</th><th>SKU</th><th>Stock</th><th>Minimum</th><th>Supplier</th></tr>")
	for _, item := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%s</td></tr>",
			item.Name, item.SKU, item.Stock, item.MinStock, item.Supplier)
	}
	b.WriteString("</table>")
	return b.String()
}

func renderDigestText(items []adapter.LowStockDigestItem) string {
	var b strings.Builder
	b.WriteString("Low stock items:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s): %d in stock, minimum %d", item.Name, item.SKU, item.Stock, item.MinStock)
		if item.Supplier != "" {
			fmt.Fprintf(&b, ", supplier %s", item.Supplier)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Package email provides email sending functionality.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/application/usecase/dashboard"
)

// Worker periodically checks inventory and emails a low-stock digest.
type Worker struct {
	lowStock     *dashboard.GetLowStockUseCase
	sender       adapter.EmailSender
	to           string
	pollInterval time.Duration
}

// NewWorker creates a new low-stock digest worker.
func NewWorker(
	lowStock *dashboard.GetLowStockUseCase,
	sender adapter.EmailSender,
	to string,
	pollInterval time.Duration,
) *Worker {
	return &Worker{
		lowStock:     lowStock,
		sender:       sender,
		to:           to,
		pollInterval: pollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Low stock worker started",
		"poll_interval", w.pollInterval,
		"recipient", w.to,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Check immediately on start, then on ticker
	w.checkAndNotify(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Low stock worker shutting down")
			return
		case <-ticker.C:
			w.checkAndNotify(ctx)
		}
	}
}

// checkAndNotify runs the low stock report and sends a digest when any
// item is at or below its minimum.
func (w *Worker) checkAndNotify(ctx context.Context) {
	output, err := w.lowStock.Execute(ctx)
	if err != nil {
		slog.Error("Failed to compute low stock report", "error", err)
		return
	}
	if len(output.Alerts) == 0 {
		return
	}

	items := make([]adapter.LowStockDigestItem, 0, len(output.Alerts))
	for _, alert := range output.Alerts {
		items = append(items, adapter.LowStockDigestItem{
			Name:     alert.Name,
			SKU:      alert.SKU,
			Supplier: alert.Supplier,
			Stock:    alert.CurrentStock,
			MinStock: alert.MinStock,
		})
	}

	if err := w.sender.SendLowStockDigest(ctx, w.to, items); err != nil {
		slog.Error("Failed to send low stock digest", "error", err)
		return
	}
	slog.Info("Low stock digest sent", "items", len(items))
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopledger/backend/internal/domain/entity"
)

// CreatePurchaseRequest represents the request body for placing a purchase order.
type CreatePurchaseRequest struct {
	SupplierName string                      `json:"supplier_name"`
	Date         string                      `json:"date"`
	Lines        []CreatePurchaseLineRequest `json:"lines" binding:"required"`
}

// CreatePurchaseLineRequest represents one line of the purchase request.
type CreatePurchaseLineRequest struct {
	ItemID   string  `json:"item_id" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	UnitCost float64 `json:"unit_cost"`
}

// PurchaseResponse represents a purchase in API responses.
type PurchaseResponse struct {
	ID           string                 `json:"id"`
	SupplierName string                 `json:"supplier_name,omitempty"`
	Total        float64                `json:"total"`
	Status       string                 `json:"status"`
	Date         string                 `json:"date,omitempty"`
	Lines        []PurchaseLineResponse `json:"lines"`
}

// PurchaseLineResponse represents one purchase line in API responses.
type PurchaseLineResponse struct {
	ID       string  `json:"id"`
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Total    float64 `json:"total"`
}

// PurchaseListResponse represents the response for listing purchases.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToPurchaseResponse converts a Purchase entity to a PurchaseResponse DTO.
func ToPurchaseResponse(purchase *entity.Purchase) PurchaseResponse {
	total, _ := purchase.Total.Float64()

	lines := make([]PurchaseLineResponse, len(purchase.Lines))
	for i, line := range purchase.Lines {
		unitCost, _ := line.UnitCost.Float64()
		lineTotal, _ := line.Total.Float64()
		lines[i] = PurchaseLineResponse{
			ID:       line.ID.String(),
			ItemID:   line.ItemID.String(),
			Quantity: line.Quantity,
			UnitCost: unitCost,
			Total:    lineTotal,
		}
	}

	response := PurchaseResponse{
		ID:           purchase.ID.String(),
		SupplierName: purchase.SupplierName,
		Total:        total,
		Status:       string(purchase.Status),
		Lines:        lines,
	}
	if purchase.Date != nil {
		response.Date = purchase.Date.Format("2006-01-02")
	}
	return response
}

// ToPurchaseListResponse converts purchases to a PurchaseListResponse DTO.
func ToPurchaseListResponse(purchases []*entity.Purchase) PurchaseListResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i, purchase := range purchases {
		responses[i] = ToPurchaseResponse(purchase)
	}
	return PurchaseListResponse{Purchases: responses}
}

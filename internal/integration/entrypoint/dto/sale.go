// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopledger/backend/internal/domain/entity"
)

// CreateSaleRequest represents the request body for recording a sale.
type CreateSaleRequest struct {
	CustomerID    string                  `json:"customer_id"`
	CustomerName  string                  `json:"customer_name"`
	PaymentStatus string                  `json:"payment_status"`
	Date          string                  `json:"date"`
	Lines         []CreateSaleLineRequest `json:"lines" binding:"required"`
}

// CreateSaleLineRequest represents one line of the sale request.
type CreateSaleLineRequest struct {
	ItemID    string  `json:"item_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Total         float64            `json:"total"`
	PaymentStatus string             `json:"payment_status"`
	Date          string             `json:"date,omitempty"`
	Lines         []SaleLineResponse `json:"lines"`
}

// SaleLineResponse represents one sale line in API responses.
type SaleLineResponse struct {
	ID        string  `json:"id"`
	ItemID    string  `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a Sale entity to a SaleResponse DTO.
func ToSaleResponse(sale *entity.Sale) SaleResponse {
	total, _ := sale.Total.Float64()

	lines := make([]SaleLineResponse, len(sale.Lines))
	for i, line := range sale.Lines {
		unitPrice, _ := line.UnitPrice.Float64()
		lineTotal, _ := line.Total.Float64()
		lines[i] = SaleLineResponse{
			ID:        line.ID.String(),
			ItemID:    line.ItemID.String(),
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Total:     lineTotal,
		}
	}

	response := SaleResponse{
		ID:            sale.ID.String(),
		CustomerName:  sale.CustomerName,
		Total:         total,
		PaymentStatus: string(sale.PaymentStatus),
		Lines:         lines,
	}
	if sale.CustomerID != nil {
		response.CustomerID = sale.CustomerID.String()
	}
	if sale.Date != nil {
		response.Date = sale.Date.Format("2006-01-02")
	}
	return response
}

// ToSaleListResponse converts sales to a SaleListResponse DTO.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = ToSaleResponse(sale)
	}
	return SaleListResponse{Sales: responses}
}

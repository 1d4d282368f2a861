// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopledger/backend/internal/domain/entity"
)

// CreateItemRequest represents the request body for creating an item.
type CreateItemRequest struct {
	Name     string   `json:"name" binding:"required"`
	SKU      string   `json:"sku"`
	Category string   `json:"category"`
	Cost     float64  `json:"cost"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	MinStock int      `json:"min_stock"`
	Supplier string   `json:"supplier"`
	Tags     []string `json:"tags"`
}

// AdjustStockRequest represents the request body for a stock adjustment.
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ItemResponse represents an item in API responses.
type ItemResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Category string   `json:"category"`
	Cost     float64  `json:"cost"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	MinStock int      `json:"min_stock"`
	Supplier string   `json:"supplier,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Status   string   `json:"status"`
	LowStock bool     `json:"low_stock"`
}

// ItemListResponse represents the response for listing items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts an Item entity to an ItemResponse DTO.
func ToItemResponse(item *entity.Item) ItemResponse {
	cost, _ := item.Cost.Float64()
	price, _ := item.Price.Float64()

	return ItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		SKU:      item.SKU,
		Category: item.Category,
		Cost:     cost,
		Price:    price,
		Stock:    item.Stock,
		MinStock: item.MinStock,
		Supplier: item.Supplier,
		Tags:     item.Tags,
		Status:   string(item.Status),
		LowStock: item.IsLowStock(),
	}
}

// ToItemListResponse converts items to an ItemListResponse DTO.
func ToItemListResponse(items []*entity.Item) ItemListResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return ItemListResponse{Items: responses}
}

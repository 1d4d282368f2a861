// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopledger/backend/internal/domain/entity"
)

// CreateCustomerRequest represents the request body for creating a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	TotalSales  float64 `json:"total_sales"`
	TotalOrders int     `json:"total_orders"`
	Status      string  `json:"status"`
}

// CustomerListResponse represents the response for listing customers.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a Customer entity to a CustomerResponse DTO.
func ToCustomerResponse(customer *entity.Customer) CustomerResponse {
	totalSales, _ := customer.TotalSales.Float64()

	return CustomerResponse{
		ID:          customer.ID.String(),
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		TotalSales:  totalSales,
		TotalOrders: customer.TotalOrders,
		Status:      string(customer.Status),
	}
}

// ToCustomerListResponse converts customers to a CustomerListResponse DTO.
func ToCustomerListResponse(customers []*entity.Customer) CustomerListResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = ToCustomerResponse(customer)
	}
	return CustomerListResponse{Customers: responses}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/application/usecase/customer"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// CustomerController handles customer endpoints.
type CustomerController struct {
	createCustomerUseCase *customer.CreateCustomerUseCase
	listCustomersUseCase  *customer.ListCustomersUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(
	createCustomerUseCase *customer.CreateCustomerUseCase,
	listCustomersUseCase *customer.ListCustomersUseCase,
) *CustomerController {
	return &CustomerController{
		createCustomerUseCase: createCustomerUseCase,
		listCustomersUseCase:  listCustomersUseCase,
	}
}

// Create handles POST /customers requests.
func (c *CustomerController) Create(ctx *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createCustomerUseCase.Execute(ctx.Request.Context(), customer.CreateCustomerInput{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create customer",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(output.Customer))
}

// List handles GET /customers requests.
func (c *CustomerController) List(ctx *gin.Context) {
	output, err := c.listCustomersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list customers",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(output.Customers))
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/usecase/item"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// ItemController handles inventory item endpoints.
type ItemController struct {
	createItemUseCase  *item.CreateItemUseCase
	listItemsUseCase   *item.ListItemsUseCase
	adjustStockUseCase *item.AdjustStockUseCase
}

// NewItemController creates a new item controller instance.
func NewItemController(
	createItemUseCase *item.CreateItemUseCase,
	listItemsUseCase *item.ListItemsUseCase,
	adjustStockUseCase *item.AdjustStockUseCase,
) *ItemController {
	return &ItemController{
		createItemUseCase:  createItemUseCase,
		listItemsUseCase:   listItemsUseCase,
		adjustStockUseCase: adjustStockUseCase,
	}
}

// Create handles POST /items requests.
func (c *ItemController) Create(ctx *gin.Context) {
	var request dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createItemUseCase.Execute(ctx.Request.Context(), item.CreateItemInput{
		Name:     request.Name,
		SKU:      request.SKU,
		Category: request.Category,
		Cost:     decimal.NewFromFloat(request.Cost),
		Price:    decimal.NewFromFloat(request.Price),
		Stock:    request.Stock,
		MinStock: request.MinStock,
		Supplier: request.Supplier,
		Tags:     request.Tags,
	})
	if err != nil {
		respondItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(output.Item))
}

// List handles GET /items requests.
func (c *ItemController) List(ctx *gin.Context) {
	output, err := c.listItemsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list items",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemListResponse(output.Items))
}

// AdjustStock handles POST /items/:id/adjust-stock requests.
func (c *ItemController) AdjustStock(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID",
			Code:  string(domainerror.ErrCodeItemNotFound),
		})
		return
	}

	var request dto.AdjustStockRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.adjustStockUseCase.Execute(ctx.Request.Context(), item.AdjustStockInput{
		ItemID: itemID,
		Delta:  request.Delta,
	})
	if err != nil {
		respondItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// respondItemError maps item errors to HTTP responses.
func respondItemError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeItemNotFound),
		})
	case errors.Is(err, domainerror.ErrSKUAlreadyExists):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeSKUAlreadyExists),
		})
	case errors.Is(err, domainerror.ErrNegativeStock):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeNegativeStock),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process item",
		})
	}
}

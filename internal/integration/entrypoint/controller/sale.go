// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/usecase/sale"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	createSaleUseCase *sale.CreateSaleUseCase
	listSalesUseCase  *sale.ListSalesUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createSaleUseCase *sale.CreateSaleUseCase,
	listSalesUseCase *sale.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		createSaleUseCase: createSaleUseCase,
		listSalesUseCase:  listSalesUseCase,
	}
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeSaleWithoutLines),
		})
		return
	}

	var customerID *uuid.UUID
	if request.CustomerID != "" {
		id, err := uuid.Parse(request.CustomerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid customer_id",
				Code:  string(domainerror.ErrCodeCustomerNotFound),
			})
			return
		}
		customerID = &id
	}

	var date time.Time
	if request.Date != "" {
		parsed, err := time.Parse("2006-01-02", request.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		date = parsed
	}

	lines := make([]sale.CreateSaleLineInput, 0, len(request.Lines))
	for _, line := range request.Lines {
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid item_id in line",
				Code:  string(domainerror.ErrCodeItemNotFound),
			})
			return
		}
		lines = append(lines, sale.CreateSaleLineInput{
			ItemID:    itemID,
			Quantity:  line.Quantity,
			UnitPrice: decimal.NewFromFloat(line.UnitPrice),
		})
	}

	output, err := c.createSaleUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		CustomerID:    customerID,
		CustomerName:  request.CustomerName,
		PaymentStatus: request.PaymentStatus,
		Date:          date,
		Lines:         lines,
	})
	if err != nil {
		respondSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	output, err := c.listSalesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list sales",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// respondSaleError maps sale errors to HTTP responses.
func respondSaleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrSaleWithoutLines):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeSaleWithoutLines),
		})
	case errors.Is(err, domainerror.ErrInvalidPaymentStatus):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPaymentStatus),
		})
	case errors.Is(err, domainerror.ErrInsufficientStock):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInsufficientStock),
		})
	case errors.Is(err, domainerror.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeItemNotFound),
		})
	case errors.Is(err, domainerror.ErrCustomerNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeCustomerNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to record sale",
		})
	}
}

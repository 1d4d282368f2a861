// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/usecase/purchase"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// PurchaseController handles purchase endpoints.
type PurchaseController struct {
	createPurchaseUseCase  *purchase.CreatePurchaseUseCase
	listPurchasesUseCase   *purchase.ListPurchasesUseCase
	receivePurchaseUseCase *purchase.ReceivePurchaseUseCase
}

// NewPurchaseController creates a new purchase controller instance.
func NewPurchaseController(
	createPurchaseUseCase *purchase.CreatePurchaseUseCase,
	listPurchasesUseCase *purchase.ListPurchasesUseCase,
	receivePurchaseUseCase *purchase.ReceivePurchaseUseCase,
) *PurchaseController {
	return &PurchaseController{
		createPurchaseUseCase:  createPurchaseUseCase,
		listPurchasesUseCase:   listPurchasesUseCase,
		receivePurchaseUseCase: receivePurchaseUseCase,
	}
}

// Create handles POST /purchases requests.
func (c *PurchaseController) Create(ctx *gin.Context) {
	var request dto.CreatePurchaseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePurchaseWithoutLines),
		})
		return
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

	lines := make([]purchase.CreatePurchaseLineInput, 0, len(request.Lines))
	for _, line := range request.Lines {
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid item_id in line",
				Code:  string(domainerror.ErrCodeItemNotFound),
			})
			return
		}
		lines = append(lines, purchase.CreatePurchaseLineInput{
			ItemID:   itemID,
			Quantity: line.Quantity,
			UnitCost: decimal.NewFromFloat(line.UnitCost),
		})
	}

	output, err := c.createPurchaseUseCase.Execute(ctx.Request.Context(), purchase.CreatePurchaseInput{
		SupplierName: request.SupplierName,
		Date:         date,
		Lines:        lines,
	})
	if err != nil {
		respondPurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(output.Purchase))
}

// List handles GET /purchases requests.
func (c *PurchaseController) List(ctx *gin.Context) {
	output, err := c.listPurchasesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list purchases",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(output.Purchases))
}

// Receive handles POST /purchases/:id/receive requests.
func (c *PurchaseController) Receive(ctx *gin.Context) {
	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID",
			Code:  string(domainerror.ErrCodePurchaseNotFound),
		})
		return
	}

	output, err := c.receivePurchaseUseCase.Execute(ctx.Request.Context(), purchase.ReceivePurchaseInput{
		PurchaseID: purchaseID,
	})
	if err != nil {
		respondPurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(output.Purchase))
}

// respondPurchaseError maps purchase errors to HTTP responses.
func respondPurchaseError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrPurchaseWithoutLines):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodePurchaseWithoutLines),
		})
	case errors.Is(err, domainerror.ErrPurchaseNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodePurchaseNotFound),
		})
	case errors.Is(err, domainerror.ErrPurchaseAlreadyReceived):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodePurchaseAlreadyReceived),
		})
	case errors.Is(err, domainerror.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeItemNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process purchase",
		})
	}
}

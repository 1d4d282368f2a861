// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/domain/valueobject"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getMetricsUseCase           *dashboard.GetMetricsUseCase
	getSalesSeriesUseCase       *dashboard.GetSalesSeriesUseCase
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	getTopPerformersUseCase     *dashboard.GetTopPerformersUseCase
	getLowStockUseCase          *dashboard.GetLowStockUseCase
	getRecentActivityUseCase    *dashboard.GetRecentActivityUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getMetricsUseCase *dashboard.GetMetricsUseCase,
	getSalesSeriesUseCase *dashboard.GetSalesSeriesUseCase,
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	getTopPerformersUseCase *dashboard.GetTopPerformersUseCase,
	getLowStockUseCase *dashboard.GetLowStockUseCase,
	getRecentActivityUseCase *dashboard.GetRecentActivityUseCase,
) *DashboardController {
	return &DashboardController{
		getMetricsUseCase:           getMetricsUseCase,
		getSalesSeriesUseCase:       getSalesSeriesUseCase,
		getCategoryBreakdownUseCase: getCategoryBreakdownUseCase,
		getTopPerformersUseCase:     getTopPerformersUseCase,
		getLowStockUseCase:          getLowStockUseCase,
		getRecentActivityUseCase:    getRecentActivityUseCase,
	}
}

// GetMetrics handles GET /dashboard/metrics requests.
func (c *DashboardController) GetMetrics(ctx *gin.Context) {
	output, err := c.getMetricsUseCase.Execute(ctx.Request.Context(), dashboard.GetMetricsInput{
		Period: valueobject.Period(ctx.Query("period")),
	})
	if err != nil {
		respondDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricsResponse(output))
}

// GetSalesSeries handles GET /dashboard/sales-series requests.
func (c *DashboardController) GetSalesSeries(ctx *gin.Context) {
	output, err := c.getSalesSeriesUseCase.Execute(ctx.Request.Context(), dashboard.GetSalesSeriesInput{
		Period: valueobject.Period(ctx.Query("period")),
	})
	if err != nil {
		respondDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesSeriesResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	output, err := c.getCategoryBreakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		Period: valueobject.Period(ctx.Query("period")),
	})
	if err != nil {
		respondDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// GetTopPerformers handles GET /dashboard/top-performers requests.
func (c *DashboardController) GetTopPerformers(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "limit must be a positive integer",
			Code:  string(domainerror.ErrCodeInvalidLimit),
		})
		return
	}

	output, err := c.getTopPerformersUseCase.Execute(ctx.Request.Context(), dashboard.GetTopPerformersInput{
		Period: valueobject.Period(ctx.Query("period")),
		Limit:  limit,
	})
	if err != nil {
		respondDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopPerformersResponse(output))
}

// GetLowStock handles GET /dashboard/low-stock requests.
func (c *DashboardController) GetLowStock(ctx *gin.Context) {
	output, err := c.getLowStockUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLowStockResponse(output))
}

// GetRecentActivity handles GET /dashboard/recent-activity requests.
func (c *DashboardController) GetRecentActivity(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "limit must be a positive integer",
			Code:  string(domainerror.ErrCodeInvalidLimit),
		})
		return
	}

	output, err := c.getRecentActivityUseCase.Execute(ctx.Request.Context(), dashboard.GetRecentActivityInput{
		Limit: limit,
	})
	if err != nil {
		respondDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecentActivityResponse(output))
}

// respondDashboardError maps dashboard errors to HTTP responses.
func respondDashboardError(ctx *gin.Context, err error) {
	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to compute dashboard data",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}

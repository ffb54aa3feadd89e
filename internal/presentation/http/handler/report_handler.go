package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellpoint/pos-api/internal/application/service"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting and dashboard HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales handles the sales report with date range and sort
func (h *ReportHandler) Sales(c *gin.Context) {
	params := &repository.BillFilterParams{
		Pagination: paginationFromQuery(c),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}
	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.reportService.GetSalesReport(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales report retrieved successfully", result)
}

// Inventory handles the inventory report
func (h *ReportHandler) Inventory(c *gin.Context) {
	params := &repository.ItemFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}

	report, err := h.reportService.GetInventoryReport(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory report retrieved successfully", report)
}

// CategorySales handles the per-category sales aggregate
func (h *ReportHandler) CategorySales(c *gin.Context) {
	results, err := h.reportService.GetCategorySales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category sales retrieved successfully", results)
}

// MostSoldItems handles the top selling items aggregate
func (h *ReportHandler) MostSoldItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	results, err := h.reportService.GetMostSoldItems(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Most sold items retrieved successfully", results)
}

// MonthlyRevenue handles the per-month revenue aggregate
func (h *ReportHandler) MonthlyRevenue(c *gin.Context) {
	results, err := h.reportService.GetMonthlyRevenue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly revenue retrieved successfully", results)
}

// Dashboard handles the admin dashboard statistics
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

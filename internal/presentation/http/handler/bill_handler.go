package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/application/service"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/internal/presentation/http/dto/request"
	"github.com/sellpoint/pos-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// BillHandler handles checkout and bill HTTP requests
type BillHandler struct {
	checkoutService *service.CheckoutService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(checkoutService *service.CheckoutService) *BillHandler {
	return &BillHandler{checkoutService: checkoutService}
}

// Complete handles the checkout request. The cashier is the authenticated
// user, never taken from the body.
func (h *BillHandler) Complete(c *gin.Context) {
	cashierID := GetUserID(c)
	if cashierID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CompleteBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.CheckoutLineInput, len(req.Items))
	for i, line := range req.Items {
		items[i] = service.CheckoutLineInput{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}

	bill, err := h.checkoutService.CompleteBill(c.Request.Context(), &service.CheckoutInput{
		CashierID:     *cashierID,
		CustomerID:    req.CustomerID,
		Items:         items,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		TaxAmount:     decimal.NewFromFloat(req.TaxAmount),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill completed successfully", gin.H{
		"bill_id": bill.ID,
		"bill":    bill,
	})
}

// List handles listing bills with date range filtering
func (h *BillHandler) List(c *gin.Context) {
	var req request.BillFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: paginationFromQuery(c),
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if req.CashierID != "" {
		if cashierID, err := uuid.Parse(req.CashierID); err == nil {
			params.CashierID = &cashierID
		}
	}
	if req.CustomerID != "" {
		if customerID, err := uuid.Parse(req.CustomerID); err == nil {
			params.CustomerID = &customerID
		}
	}
	if req.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			params.StartDate = &startDate
		}
	}
	if req.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.checkoutService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles the receipt read for a persisted bill
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	receipt, err := h.checkoutService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/application/service"
	"github.com/sellpoint/pos-api/internal/presentation/http/dto/request"
	"github.com/sellpoint/pos-api/internal/presentation/http/dto/response"
)

// UserHandler handles cashier and customer management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListCashiers handles listing cashier accounts
func (h *UserHandler) ListCashiers(c *gin.Context) {
	result, err := h.userService.ListCashiers(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cashiers retrieved successfully", result)
}

// CreateCashier handles creating a cashier account
func (h *UserHandler) CreateCashier(c *gin.Context) {
	var req request.CreateCashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cashier, err := h.userService.CreateCashier(c.Request.Context(), &service.CreateCashierInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cashier created successfully", cashier)
}

// UpdateCashier handles updating a cashier account
func (h *UserHandler) UpdateCashier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateUserInput{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Password: req.Password,
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			response.BadRequest(c, "Invalid birthdate")
			return
		}
		input.Birthdate = &birthdate
	}

	cashier, err := h.userService.UpdateCashier(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashier updated successfully", cashier)
}

// DeleteCashier handles deleting a cashier account
func (h *UserHandler) DeleteCashier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}

	if err := h.userService.DeleteCashier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashier deleted successfully", nil)
}

// ListCustomers handles the customer lookup used at checkout
func (h *UserHandler) ListCustomers(c *gin.Context) {
	result, err := h.userService.ListCustomers(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// GetCustomer handles getting a single customer
func (h *UserHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

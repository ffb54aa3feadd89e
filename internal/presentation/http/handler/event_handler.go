package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/application/service"
	"github.com/sellpoint/pos-api/internal/presentation/http/dto/request"
	"github.com/sellpoint/pos-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// EventHandler handles promotion event HTTP requests
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func eventInputFromRequest(req *request.EventRequest) (*service.EventInput, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	return &service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Discount:    decimal.NewFromFloat(req.Discount),
		Date:        date,
		CategoryIDs: req.CategoryIDs,
		ItemIDs:     req.ItemIDs,
	}, nil
}

// List handles listing events
func (h *EventHandler) List(c *gin.Context) {
	result, err := h.eventService.ListEvents(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Events retrieved successfully", result)
}

// Active handles listing events effective today
func (h *EventHandler) Active(c *gin.Context) {
	events, err := h.eventService.GetActiveEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active events retrieved successfully", events)
}

// Get handles getting a single event
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event retrieved successfully", event)
}

// Create handles creating an event
func (h *EventHandler) Create(c *gin.Context) {
	var req request.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := eventInputFromRequest(&req)
	if err != nil {
		response.BadRequest(c, "Invalid event date")
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Event created successfully", event)
}

// Update handles updating an event
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	var req request.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := eventInputFromRequest(&req)
	if err != nil {
		response.BadRequest(c, "Invalid event date")
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event updated successfully", event)
}

// Delete handles deleting an event
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event deleted successfully", nil)
}

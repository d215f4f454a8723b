package handler

import (
	"github.com/gin-gonic/gin"

	ticketingapp "github.com/comptoir/backend/internal/application/ticketing"
)

// TicketingHandler exposes event tracking and ticket scanning.
type TicketingHandler struct {
	BaseHandler
	service *ticketingapp.Service
}

// NewTicketingHandler creates a new TicketingHandler
func NewTicketingHandler(service *ticketingapp.Service) *TicketingHandler {
	return &TicketingHandler{service: service}
}

// RegisterRoutes registers ticketing routes
func (h *TicketingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.DELETE(":id", h.DeleteEvent)
		events.POST(":id/sales", h.RecordSale)
		events.POST(":id/scan", h.Scan)
		events.GET("/export", h.Export)
	}
}

// ListEvents returns the tracked events with their remaining counts
func (h *TicketingHandler) ListEvents(c *gin.Context) {
	h.Success(c, h.service.Events(c.Request.Context()))
}

// CreateEvent tracks a new event
func (h *TicketingHandler) CreateEvent(c *gin.Context) {
	var req ticketingapp.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	event, err := h.service.AddEvent(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, event)
}

// DeleteEvent stops tracking an event
func (h *TicketingHandler) DeleteEvent(c *gin.Context) {
	h.service.RemoveEvent(c.Request.Context(), c.Param("id"))
	h.NoContent(c)
}

// RecordSale increments an event's sold counter by one
func (h *TicketingHandler) RecordSale(c *gin.Context) {
	event, err := h.service.RecordSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, event)
}

// Scan requests a ticket scan for an event and records the sale when the
// read is valid
func (h *TicketingHandler) Scan(c *gin.Context) {
	result, err := h.service.Scan(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Export downloads the event list as evenements.csv
func (h *TicketingHandler) Export(c *gin.Context) {
	h.CSV(c, "evenements.csv", h.service.ExportCSV(c.Request.Context()))
}

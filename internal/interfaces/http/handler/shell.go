package handler

import (
	"github.com/gin-gonic/gin"

	shellapp "github.com/comptoir/backend/internal/application/shell"
)

// ShellHandler exposes the active tab and the dashboard summary.
type ShellHandler struct {
	BaseHandler
	service *shellapp.Service
}

// NewShellHandler creates a new ShellHandler
func NewShellHandler(service *shellapp.Service) *ShellHandler {
	return &ShellHandler{service: service}
}

// RegisterRoutes registers shell routes
func (h *ShellHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shell := rg.Group("/shell")
	{
		shell.GET("/tab", h.GetActiveTab)
		shell.PUT("/tab", h.SetActiveTab)
		shell.GET("/dashboard", h.GetDashboard)
	}
}

// GetActiveTab returns the persisted active tab
func (h *ShellHandler) GetActiveTab(c *gin.Context) {
	h.Success(c, h.service.ActiveTab(c.Request.Context()))
}

// SetActiveTab persists the tab selection
func (h *ShellHandler) SetActiveTab(c *gin.Context) {
	var req shellapp.SetTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tab, err := h.service.SetActiveTab(c.Request.Context(), req.Tab)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tab)
}

// GetDashboard returns the cross-module summary
func (h *ShellHandler) GetDashboard(c *gin.Context) {
	h.Success(c, h.service.Dashboard(c.Request.Context()))
}

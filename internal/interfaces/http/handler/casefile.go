package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	casefileapp "github.com/comptoir/backend/internal/application/casefile"
)

// CasefileHandler exposes the case-notes log, its import/export and the
// PDF report.
type CasefileHandler struct {
	BaseHandler
	service *casefileapp.Service
}

// NewCasefileHandler creates a new CasefileHandler
func NewCasefileHandler(service *casefileapp.Service) *CasefileHandler {
	return &CasefileHandler{service: service}
}

// RegisterRoutes registers casefile routes
func (h *CasefileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cases := rg.Group("/cases")
	{
		cases.GET("", h.ListCases)
		cases.POST("", h.CreateCase)
		cases.DELETE(":id", h.DeleteCase)
		cases.POST("/import", h.Import)
		cases.GET("/export", h.Export)
		cases.GET("/report/pdf", h.ReportPDF)
	}
}

// ListCases returns the case notes
func (h *CasefileHandler) ListCases(c *gin.Context) {
	h.Success(c, h.service.Cases(c.Request.Context()))
}

// CreateCase logs a new case note
func (h *CasefileHandler) CreateCase(c *gin.Context) {
	var req casefileapp.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.service.AddCase(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// DeleteCase removes a case note
func (h *CasefileHandler) DeleteCase(c *gin.Context) {
	h.service.RemoveCase(c.Request.Context(), c.Param("id"))
	h.NoContent(c)
}

// Import replaces the log with a JSON array payload
func (h *CasefileHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}

	count, err := h.service.Import(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"imported": count})
}

// Export downloads the log as dossiers.csv
func (h *CasefileHandler) Export(c *gin.Context) {
	h.CSV(c, "dossiers.csv", h.service.ExportCSV(c.Request.Context()))
}

// ReportPDF downloads the case-notes report as pv-notes.pdf
func (h *CasefileHandler) ReportPDF(c *gin.Context) {
	data, err := h.service.ReportPDF(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.PDF(c, "pv-notes.pdf", data)
}

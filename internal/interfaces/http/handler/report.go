package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/laundrify/backend/internal/application/report"
)

// ReportHandler handles the analytics report endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.Service
	exporter      *reportapp.ExcelExporter
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.Service, exporter *reportapp.ExcelExporter) *ReportHandler {
	return &ReportHandler{reportService: reportService, exporter: exporter}
}

// RegisterRoutes registers report routes on the API group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("", h.Get)
		reports.GET("/export", h.Export)
	}
}

// ReportFilterRequest defines the optional date window for reports.
// Leaving both dates empty computes the report over all data.
type ReportFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Get handles GET /reports
func (h *ReportHandler) Get(c *gin.Context) {
	var req ReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	data, err := h.reportService.Generate(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, data)
}

// Export handles GET /reports/export, streaming the report as a workbook
func (h *ReportHandler) Export(c *gin.Context) {
	var req ReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	data, err := h.reportService.Generate(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(data, &buf); err != nil {
		h.InternalError(c, "Failed to build report workbook")
		return
	}

	filename := fmt.Sprintf("laundry-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
